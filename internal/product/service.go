// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/middleware"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	owner *middleware.Identity,
	req CreateProductRequest,
) (*Product, error) {
	product := &Product{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		Image:    req.Image,
		VendorID: owner.ID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	return s.repo.List(ctx, params)
}

// Update applies a partial update. Vendors may only touch their own rows;
// admins may touch any.
func (s *Service) Update(
	ctx context.Context,
	caller *middleware.Identity,
	id string,
	req UpdateProductRequest,
) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeWrite(caller, product); err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Image != nil {
		product.Image = *req.Image
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Delete(
	ctx context.Context,
	caller *middleware.Identity,
	id string,
) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeWrite(caller, product); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) authorizeWrite(
	caller *middleware.Identity,
	product *Product,
) error {
	if caller.Role == "admin" {
		return nil
	}

	if !product.OwnedBy(caller.ID) {
		return fmt.Errorf("product write: %w", core.ErrForbidden)
	}

	return nil
}

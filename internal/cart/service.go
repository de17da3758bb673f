// AngelaMos | 2026
// service.go

package cart

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/product"
)

// CatalogReader is the slice of the product service the cart needs: enough
// to snapshot a product into a cart line.
type CatalogReader interface {
	Get(ctx context.Context, id string) (*product.Product, error)
}

type Service struct {
	repo    Repository
	catalog CatalogReader
}

func NewService(repo Repository, catalog CatalogReader) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddItem puts a product in the cart, or bumps the quantity when the line
// already exists. The product snapshot (name, price, image) is refreshed on
// every add.
func (s *Service) AddItem(
	ctx context.Context,
	userID, productID string,
	quantity int,
) (*Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("add item: quantity must be positive: %w",
			core.ErrInvalidInput)
	}

	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := &Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}

	existing, err := s.repo.GetItem(ctx, userID, productID)
	if err == nil {
		item.Quantity += existing.Quantity
		item.AddedAt = existing.AddedAt
	}

	if p.Stock < item.Quantity {
		return nil, fmt.Errorf("add item: only %d in stock: %w",
			p.Stock, core.ErrInvalidInput)
	}

	if err := s.repo.SetItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// UpdateQuantity sets the quantity of an existing line. Zero removes it.
func (s *Service) UpdateQuantity(
	ctx context.Context,
	userID, productID string,
	quantity int,
) (*Cart, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("update item: quantity must not be negative: %w",
			core.ErrInvalidInput)
	}

	if quantity == 0 {
		if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
			return nil, err
		}
		return s.Get(ctx, userID)
	}

	item, err := s.repo.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity

	if err := s.repo.SetItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

func (s *Service) RemoveItem(
	ctx context.Context,
	userID, productID string,
) (*Cart, error) {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID string) (*Cart, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Hash iteration order is arbitrary; keep the response stable.
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].AddedAt.Before(items[j].AddedAt)
		}
		return items[i].ProductID < items[j].ProductID
	})

	c := &Cart{UserID: userID, Items: items}
	for i := range items {
		c.Subtotal += items[i].LineTotal()
	}

	return c, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

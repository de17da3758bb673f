// AngelaMos | 2026
// service_test.go

package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/middleware"
)

type fakeRepository struct {
	products map[string]*Product
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{products: make(map[string]*Product)}
}

func (f *fakeRepository) Create(_ context.Context, p *Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, p *Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeRepository) List(
	_ context.Context,
	params ListProductsParams,
) ([]Product, int, error) {
	var out []Product
	for _, p := range f.products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

var (
	vendorA = &middleware.Identity{ID: "vendor-a", Role: "vendor"}
	vendorB = &middleware.Identity{ID: "vendor-b", Role: "vendor"}
	admin   = &middleware.Identity{ID: "admin-1", Role: "admin"}
)

func seedProduct(t *testing.T, svc *Service) *Product {
	t.Helper()

	p, err := svc.Create(context.Background(), vendorA, CreateProductRequest{
		Name:     "Linen Shirt",
		Price:    49.90,
		Category: "tops",
		Stock:    10,
	})
	require.NoError(t, err)
	return p
}

func TestService_CreateAssignsOwner(t *testing.T) {
	svc := NewService(newFakeRepository())

	p := seedProduct(t, svc)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, vendorA.ID, p.VendorID)
}

func TestService_UpdateByOwner(t *testing.T) {
	svc := NewService(newFakeRepository())
	p := seedProduct(t, svc)

	newPrice := 39.90
	updated, err := svc.Update(context.Background(), vendorA, p.ID,
		UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 39.90, updated.Price)
	assert.Equal(t, "Linen Shirt", updated.Name, "untouched fields survive")
}

func TestService_UpdateByOtherVendorForbidden(t *testing.T) {
	svc := NewService(newFakeRepository())
	p := seedProduct(t, svc)

	newPrice := 1.00
	_, err := svc.Update(context.Background(), vendorB, p.ID,
		UpdateProductRequest{Price: &newPrice})
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestService_UpdateByAdmin(t *testing.T) {
	svc := NewService(newFakeRepository())
	p := seedProduct(t, svc)

	stock := 0
	updated, err := svc.Update(context.Background(), admin, p.ID,
		UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
}

func TestService_DeleteAuthorization(t *testing.T) {
	svc := NewService(newFakeRepository())
	p := seedProduct(t, svc)

	err := svc.Delete(context.Background(), vendorB, p.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)

	err = svc.Delete(context.Background(), vendorA, p.ID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_GetUnknown(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// AngelaMos | 2026
// service_test.go

package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstyle/api/internal/core"
	"github.com/smartstyle/api/internal/product"
)

type fakeRepo struct {
	carts map[string]map[string]Item
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{carts: make(map[string]map[string]Item)}
}

func (f *fakeRepo) GetItems(_ context.Context, userID string) ([]Item, error) {
	items := make([]Item, 0, len(f.carts[userID]))
	for _, item := range f.carts[userID] {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) GetItem(
	_ context.Context,
	userID, productID string,
) (*Item, error) {
	item, ok := f.carts[userID][productID]
	if !ok {
		return nil, fmt.Errorf("get cart item: %w", core.ErrNotFound)
	}
	return &item, nil
}

func (f *fakeRepo) SetItem(_ context.Context, userID string, item *Item) error {
	if f.carts[userID] == nil {
		f.carts[userID] = make(map[string]Item)
	}
	f.carts[userID][item.ProductID] = *item
	return nil
}

func (f *fakeRepo) RemoveItem(
	_ context.Context,
	userID, productID string,
) error {
	if _, ok := f.carts[userID][productID]; !ok {
		return fmt.Errorf("remove cart item: %w", core.ErrNotFound)
	}
	delete(f.carts[userID], productID)
	return nil
}

func (f *fakeRepo) Clear(_ context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

type fakeCatalog struct {
	products map[string]*product.Product
}

func (f *fakeCatalog) Get(
	_ context.Context,
	id string,
) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	return p, nil
}

func newTestService() *Service {
	catalog := &fakeCatalog{products: map[string]*product.Product{
		"shirt": {ID: "shirt", Name: "Linen Shirt", Price: 49.90, Stock: 5},
		"belt":  {ID: "belt", Name: "Leather Belt", Price: 25.00, Stock: 2},
	}}
	return NewService(newFakeRepo(), catalog)
}

func TestService_AddItemComputesTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.AddItem(ctx, "u1", "shirt", 2)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.InDelta(t, 99.80, c.Subtotal, 0.001)

	c, err = svc.AddItem(ctx, "u1", "belt", 1)
	require.NoError(t, err)

	require.Len(t, c.Items, 2)
	assert.InDelta(t, 124.80, c.Subtotal, 0.001)
}

func TestService_AddItemMergesExistingLine(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "shirt", 2)
	require.NoError(t, err)

	c, err := svc.AddItem(ctx, "u1", "shirt", 3)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestService_AddItemRejectsOverStock(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "belt", 3)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	// Merging past the stock ceiling also fails.
	_, err = svc.AddItem(ctx, "u1", "belt", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", "belt", 1)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestService_AddItemUnknownProduct(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddItem(context.Background(), "u1", "ghost", 1)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_AddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddItem(context.Background(), "u1", "shirt", 0)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestService_UpdateQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "shirt", 2)
	require.NoError(t, err)

	c, err := svc.UpdateQuantity(ctx, "u1", "shirt", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Items[0].Quantity)

	// Zero removes the line.
	c, err = svc.UpdateQuantity(ctx, "u1", "shirt", 0)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Subtotal)
}

func TestService_UpdateQuantityUnknownLine(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateQuantity(context.Background(), "u1", "shirt", 1)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_CartsAreIsolatedPerUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "shirt", 1)
	require.NoError(t, err)

	c, err := svc.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestService_Clear(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "shirt", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))

	c, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

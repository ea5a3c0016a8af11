package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepository struct {
	err error
}

func (f failingRepository) FindProducts(context.Context, domain.ProductFilter) ([]domain.Product, error) {
	return nil, f.err
}

func (f failingRepository) SearchProducts(context.Context, string) ([]domain.Product, error) {
	return nil, f.err
}

func (f failingRepository) FindByID(context.Context, int64) (domain.ProductLookup, error) {
	return domain.ProductLookup{}, f.err
}

func newTestService() *InventoryService {
	return NewInventoryService(store.NewMemoryStore(
		domain.Product{ID: 1, Name: "Gold Ring", Category: "Jewelry", Type: "gold", Price: 120},
		domain.Product{ID: 2, Name: "Silver Band", Category: "Rings", Type: "silver", Price: 45},
		domain.Product{ID: 3, Name: "Necklace", Category: "Jewelry", Type: "gold", Price: 300},
	))
}

func TestNewProductFilter(t *testing.T) {
	filter, err := NewProductFilter("Rings", "gold", "10", " 99.5 ")
	require.NoError(t, err)
	assert.Equal(t, "Rings", filter.Category)
	assert.Equal(t, "gold", filter.Type)
	require.NotNil(t, filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 10.0, *filter.MinPrice)
	assert.Equal(t, 99.5, *filter.MaxPrice)

	filter, err = NewProductFilter("", "", "", "")
	require.NoError(t, err)
	assert.True(t, filter.IsEmpty())

	filter, err = NewProductFilter("", "", "0", "")
	require.NoError(t, err)
	require.NotNil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
}

func TestNewProductFilter_InvalidPrice(t *testing.T) {
	for _, raw := range []string{"abc", "NaN", "Inf", "12x"} {
		_, err := NewProductFilter("", "", raw, "")
		assert.ErrorIs(t, err, ErrInvalidRequest, raw)

		_, err = NewProductFilter("", "", "", raw)
		assert.ErrorIs(t, err, ErrInvalidRequest, raw)
	}
}

func TestListProducts(t *testing.T) {
	svc := newTestService()

	products, err := svc.ListProducts(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 3)

	products, err = svc.ListProducts(context.Background(), domain.ProductFilter{Type: "gold"})
	require.NoError(t, err)
	for _, p := range products {
		assert.Equal(t, "gold", p.Type)
	}
}

func TestSearchProducts(t *testing.T) {
	svc := newTestService()

	products, err := svc.SearchProducts(context.Background(), "ring")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = svc.SearchProducts(context.Background(), "watch")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearchProducts_MissingKeyword(t *testing.T) {
	_, err := newTestService().SearchProducts(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestGetProductDetails(t *testing.T) {
	svc := newTestService()

	lookup, err := svc.GetProductDetails(context.Background(), "2")
	require.NoError(t, err)
	assert.True(t, lookup.Found)
	assert.Equal(t, "Silver Band", lookup.Product.Name)

	lookup, err = svc.GetProductDetails(context.Background(), "99")
	require.NoError(t, err)
	assert.False(t, lookup.Found)
}

func TestGetProductDetails_BadID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetProductDetails(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = svc.GetProductDetails(context.Background(), "ring")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestStoreFailuresBecomeStoreUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewInventoryService(failingRepository{err: cause})
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, domain.ProductFilter{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)

	_, err = svc.SearchProducts(ctx, "ring")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.GetProductDetails(ctx, "1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

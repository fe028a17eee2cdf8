package services

import (
	"context"
	"testing"

	"storefront/models"
	"storefront/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *repositories.MemoryStore {
	t.Helper()
	store := repositories.NewMemoryStore()
	require.NoError(t, repositories.Seed(context.Background(), store))
	return store
}

func TestProductServiceGetProductByID(t *testing.T) {
	svc := NewProductService(seededStore(t))

	p, err := svc.GetProductByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Latest Smartphone Pro", p.Title)

	_, err = svc.GetProductByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductServiceCategories(t *testing.T) {
	svc := NewProductService(seededStore(t))

	categories, err := svc.GetAllCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)
	assert.Equal(t, models.Category{Name: "Electronics", ProductCount: 7}, categories[0])

	total := 0
	for _, c := range categories {
		total += c.ProductCount
	}
	assert.Equal(t, 20, total)
}

func TestProductServiceCreateProduct(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateProductRequest
		wantErr error
	}{
		{
			name: "valid",
			req: models.CreateProductRequest{
				Title: "Desk Lamp", Description: "Warm light", Price: "19.999",
				OriginalPrice: "25", Category: "Furniture", Rating: "4.25", Badge: " New ",
			},
		},
		{
			name:    "bad price",
			req:     models.CreateProductRequest{Title: "Desk Lamp", Price: "cheap", Category: "Furniture"},
			wantErr: ErrInvalidProduct,
		},
		{
			name:    "negative price",
			req:     models.CreateProductRequest{Title: "Desk Lamp", Price: "-1", Category: "Furniture"},
			wantErr: ErrInvalidProduct,
		},
		{
			name:    "rating above five",
			req:     models.CreateProductRequest{Title: "Desk Lamp", Price: "10", Category: "Furniture", Rating: "5.5"},
			wantErr: ErrInvalidProduct,
		},
		{
			name:    "bad original price",
			req:     models.CreateProductRequest{Title: "Desk Lamp", Price: "10", Category: "Furniture", OriginalPrice: "x"},
			wantErr: ErrInvalidProduct,
		},
		{
			name:    "blank category",
			req:     models.CreateProductRequest{Title: "Desk Lamp", Price: "10", Category: "  "},
			wantErr: ErrInvalidProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProductService(repositories.NewMemoryStore())
			p, err := svc.CreateProduct(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "20", p.Price.String())
			assert.Equal(t, "4.3", p.Rating.String())
			require.NotNil(t, p.OriginalPrice)
			require.NotNil(t, p.Badge)
			assert.Equal(t, "New", *p.Badge)
		})
	}
}

func TestProductServiceDeleteProduct(t *testing.T) {
	svc := NewProductService(seededStore(t))

	require.NoError(t, svc.DeleteProduct(context.Background(), "1"))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), "1"), ErrProductNotFound)
}

func TestCartService(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(seededStore(t))

	_, err := svc.AddToCart(ctx, "1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddToCart(ctx, "999", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.AddToCart(ctx, "1", 1)
	require.NoError(t, err)
	item, err := svc.AddToCart(ctx, "1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	_, err = svc.AddToCart(ctx, "9", 3)
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.ItemCount)
	assert.Equal(t, "254.95", summary.Subtotal.StringFixed(2))
	assert.Equal(t, "25.50", summary.Tax.StringFixed(2))
	assert.Equal(t, "280.45", summary.Total.StringFixed(2))

	_, err = svc.UpdateQuantity(ctx, "1", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.UpdateQuantity(ctx, "2", 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	item, err = svc.UpdateQuantity(ctx, "1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	assert.ErrorIs(t, svc.RemoveFromCart(ctx, "2"), ErrCartItemNotFound)
	require.NoError(t, svc.RemoveFromCart(ctx, "9"))

	items, err := svc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.ClearCart(ctx))
	items, err = svc.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFavoriteService(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	svc := NewFavoriteService(store)

	_, _, err := svc.AddToFavorites(ctx, "999")
	assert.ErrorIs(t, err, ErrProductNotFound)

	first, created, err := svc.AddToFavorites(ctx, "3")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.AddToFavorites(ctx, "3")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	favorites, err := svc.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, svc.RemoveFromFavorites(ctx, "3"))
	assert.ErrorIs(t, svc.RemoveFromFavorites(ctx, "3"), ErrFavoriteNotFound)
}

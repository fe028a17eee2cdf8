package repositories

import (
	"context"
	"fmt"
	"log"

	"storefront/config"
	"storefront/models"
)

// Store is the collection store for products, cart items and favorites.
// Lookups that find nothing return a nil pointer or false, never an error;
// errors are reserved for backend failures.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, input models.NewProduct) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	ListCartItems(ctx context.Context) ([]models.CartItemWithProduct, error)
	GetCartItem(ctx context.Context, productID string) (*models.CartItem, error)
	// AddToCart increments the quantity of the existing item for productID,
	// or creates one. quantity is not validated here.
	AddToCart(ctx context.Context, productID string, quantity int) (models.CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, productID string, quantity int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, productID string) (bool, error)
	ClearCart(ctx context.Context) error

	ListFavorites(ctx context.Context) ([]models.FavoriteWithProduct, error)
	GetFavorite(ctx context.Context, productID string) (*models.Favorite, error)
	// AddToFavorites always inserts a new row, even when productID is
	// already a favorite.
	AddToFavorites(ctx context.Context, productID string) (models.Favorite, error)
	RemoveFromFavorites(ctx context.Context, productID string) (bool, error)
}

// NewStore builds the store selected by cfg.StorageDriver and seeds it when
// cfg.SeedCatalog is set. The returned close func releases backend resources.
func NewStore(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	var (
		store   Store
		closeFn = func() {}
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := config.ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		store = NewPostgresStore(pool)
		closeFn = func() {
			pool.Close()
			log.Println("Database connection closed")
		}
	default:
		store = NewMemoryStore()
	}

	if cfg.SeedCatalog {
		if err := Seed(ctx, store); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return store, closeFn, nil
}

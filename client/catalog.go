package client

import (
	"context"
	"sync"

	"storefront/catalog"
	"storefront/models"
)

// Catalog fetches the product list once and answers queries locally.
type Catalog struct {
	client *Client

	mu       sync.Mutex
	products []models.Product
	loaded   bool
}

func NewCatalog(c *Client) *Catalog {
	return &Catalog{client: c}
}

// Products returns the cached product list, fetching it on first use.
func (c *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.products, nil
	}
	return c.fetchLocked(ctx)
}

// Refresh discards the cached list and fetches it again.
func (c *Catalog) Refresh(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fetchLocked(ctx)
}

func (c *Catalog) fetchLocked(ctx context.Context) ([]models.Product, error) {
	products, err := c.client.Products(ctx)
	if err != nil {
		return nil, err
	}
	c.products = products
	c.loaded = true
	return products, nil
}

func (c *Catalog) Query(ctx context.Context, q catalog.Query) (catalog.Page, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return catalog.Page{}, err
	}
	return catalog.Apply(products, q), nil
}

func (c *Catalog) Listing(ctx context.Context) (*catalog.Listing, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewListing(products), nil
}

func (c *Catalog) Categories(ctx context.Context) ([]models.Category, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(products), nil
}

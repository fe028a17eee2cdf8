package client

import (
	"context"
	"slices"

	"storefront/models"
)

// FavoritesMirror is the local view of the server favorites list.
type FavoritesMirror struct {
	client *Client
	m      *mirror[models.FavoriteWithProduct]
}

func NewFavoritesMirror(c *Client) *FavoritesMirror {
	return &FavoritesMirror{
		client: c,
		m:      &mirror[models.FavoriteWithProduct]{fetch: c.Favorites},
	}
}

func (fm *FavoritesMirror) Refresh(ctx context.Context) error {
	return fm.m.refresh(ctx)
}

func (fm *FavoritesMirror) Items() []models.FavoriteWithProduct {
	return fm.m.snapshot()
}

func (fm *FavoritesMirror) Mutations() []Mutation {
	return fm.m.mutations()
}

func (fm *FavoritesMirror) Contains(productID string) bool {
	return indexOfFavorite(fm.m.snapshot(), productID) >= 0
}

func (fm *FavoritesMirror) Add(ctx context.Context, product models.Product) (Mutation, error) {
	mut := Mutation{Kind: MutationAddFavorite, ProductID: product.ID}
	return fm.m.mutate(ctx, mut,
		func(items []models.FavoriteWithProduct) []models.FavoriteWithProduct {
			if indexOfFavorite(items, product.ID) >= 0 {
				return items
			}
			return append(items, models.FavoriteWithProduct{
				Favorite: models.Favorite{ProductID: product.ID},
				Product:  product,
			})
		},
		func(ctx context.Context) error {
			_, err := fm.client.AddFavorite(ctx, product.ID)
			return err
		},
	)
}

func (fm *FavoritesMirror) Remove(ctx context.Context, productID string) (Mutation, error) {
	mut := Mutation{Kind: MutationRemoveFavorite, ProductID: productID}
	return fm.m.mutate(ctx, mut,
		func(items []models.FavoriteWithProduct) []models.FavoriteWithProduct {
			return slices.DeleteFunc(items, func(fav models.FavoriteWithProduct) bool {
				return fav.ProductID == productID
			})
		},
		func(ctx context.Context) error {
			return fm.client.RemoveFavorite(ctx, productID)
		},
	)
}

// Toggle removes product from favorites when present and adds it otherwise.
func (fm *FavoritesMirror) Toggle(ctx context.Context, product models.Product) (Mutation, error) {
	if fm.Contains(product.ID) {
		return fm.Remove(ctx, product.ID)
	}
	return fm.Add(ctx, product)
}

func indexOfFavorite(items []models.FavoriteWithProduct, productID string) int {
	return slices.IndexFunc(items, func(fav models.FavoriteWithProduct) bool {
		return fav.ProductID == productID
	})
}

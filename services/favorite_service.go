package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

type FavoriteService struct {
	store repositories.Store
}

func NewFavoriteService(store repositories.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

func (s *FavoriteService) GetFavorites(ctx context.Context) ([]models.FavoriteWithProduct, error) {
	return s.store.ListFavorites(ctx)
}

// AddToFavorites returns the existing favorite for productID instead of
// inserting a second row. created reports whether a new row was stored.
func (s *FavoriteService) AddToFavorites(ctx context.Context, productID string) (fav *models.Favorite, created bool, err error) {
	product, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}

	existing, err := s.store.GetFavorite(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	added, err := s.store.AddToFavorites(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	return &added, true, nil
}

func (s *FavoriteService) RemoveFromFavorites(ctx context.Context, productID string) error {
	removed, err := s.store.RemoveFromFavorites(ctx, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrFavoriteNotFound
	}
	return nil
}

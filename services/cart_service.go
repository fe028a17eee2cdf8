package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

type CartService struct {
	store repositories.Store
}

func NewCartService(store repositories.Store) *CartService {
	return &CartService{store: store}
}

func (s *CartService) GetCart(ctx context.Context) ([]models.CartItemWithProduct, error) {
	return s.store.ListCartItems(ctx)
}

func (s *CartService) GetSummary(ctx context.Context) (models.CartSummary, error) {
	items, err := s.store.ListCartItems(ctx)
	if err != nil {
		return models.CartSummary{}, err
	}
	return models.SummarizeCart(items), nil
}

// AddToCart merges into the existing line for productID when there is one.
func (s *CartService) AddToCart(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	item, err := s.store.AddToCart(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.store.UpdateCartItemQuantity(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, productID string) error {
	removed, err := s.store.RemoveFromCart(ctx, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) ClearCart(ctx context.Context) error {
	return s.store.ClearCart(ctx)
}

func (s *CartService) requireProduct(ctx context.Context, productID string) error {
	product, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}

package services

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidProduct   = errors.New("invalid product")
)

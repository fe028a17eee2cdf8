package services

import (
	"context"
	"fmt"
	"strings"

	"storefront/catalog"
	"storefront/models"
	"storefront/repositories"

	"github.com/shopspring/decimal"
)

var maxRating = decimal.NewFromInt(5)

type ProductService struct {
	store repositories.Store
}

func NewProductService(store repositories.Store) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(products), nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	input, err := newProductFromRequest(req)
	if err != nil {
		return nil, err
	}

	product, err := s.store.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

func newProductFromRequest(req models.CreateProductRequest) (models.NewProduct, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil || price.IsNegative() {
		return models.NewProduct{}, fmt.Errorf("%w: price must be a non-negative decimal", ErrInvalidProduct)
	}

	rating := decimal.Zero
	if raw := strings.TrimSpace(req.Rating); raw != "" {
		rating, err = decimal.NewFromString(raw)
		if err != nil || rating.IsNegative() || rating.GreaterThan(maxRating) {
			return models.NewProduct{}, fmt.Errorf("%w: rating must be between 0.0 and 5.0", ErrInvalidProduct)
		}
	}

	if req.ReviewCount < 0 {
		return models.NewProduct{}, fmt.Errorf("%w: reviewCount must not be negative", ErrInvalidProduct)
	}

	input := models.NewProduct{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       price.Round(2),
		Category:    strings.TrimSpace(req.Category),
		Image:       strings.TrimSpace(req.Image),
		Rating:      rating.Round(1),
		ReviewCount: req.ReviewCount,
		IsOnSale:    req.IsOnSale,
	}

	if raw := strings.TrimSpace(req.OriginalPrice); raw != "" {
		original, err := decimal.NewFromString(raw)
		if err != nil || original.IsNegative() {
			return models.NewProduct{}, fmt.Errorf("%w: originalPrice must be a non-negative decimal", ErrInvalidProduct)
		}
		original = original.Round(2)
		input.OriginalPrice = &original
	}

	if badge := strings.TrimSpace(req.Badge); badge != "" {
		input.Badge = &badge
	}

	if input.Title == "" || input.Category == "" {
		return models.NewProduct{}, fmt.Errorf("%w: title and category are required", ErrInvalidProduct)
	}

	return input, nil
}

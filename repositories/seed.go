package repositories

import (
	"context"
	"log"
	"time"

	"storefront/models"

	"github.com/shopspring/decimal"
)

const seedImageBase = "https://images.unsplash.com/"
const seedImageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"

type seedProduct struct {
	ID          string
	Title       string
	Description string
	Price       string
	Original    string
	Category    string
	Image       string
	Rating      string
	ReviewCount int
	IsOnSale    bool
	Badge       string
}

var seedCatalog = []seedProduct{
	{
		ID:          "1",
		Title:       "Premium Wireless Headphones",
		Description: "High-quality wireless headphones with noise cancellation and premium sound quality.",
		Price:       "89.99",
		Original:    "105.99",
		Category:    "Electronics",
		Image:       "photo-1505740420928-5e560c06d30e",
		Rating:      "4.5",
		ReviewCount: 324,
		IsOnSale:    true,
		Badge:       "15% OFF",
	},
	{
		ID:          "2",
		Title:       "Latest Smartphone Pro",
		Description: "Cutting-edge smartphone with advanced camera system and powerful processor.",
		Price:       "699.99",
		Category:    "Electronics",
		Image:       "photo-1511707171634-5f897ff02aa9",
		Rating:      "5.0",
		ReviewCount: 156,
	},
	{
		ID:          "3",
		Title:       "RGB Gaming Keyboard",
		Description: "Mechanical gaming keyboard with customizable RGB lighting and responsive keys.",
		Price:       "129.99",
		Category:    "Electronics",
		Image:       "photo-1541140532154-b024d705b90a",
		Rating:      "4.2",
		ReviewCount: 89,
		Badge:       "NEW",
	},
	{
		ID:          "4",
		Title:       "Fitness Smartwatch",
		Description: "Advanced fitness tracking smartwatch with heart rate monitoring and GPS.",
		Price:       "249.99",
		Original:    "299.99",
		Category:    "Electronics",
		Image:       "photo-1523275335684-37898b6baf30",
		Rating:      "4.1",
		ReviewCount: 201,
		IsOnSale:    true,
	},
	{
		ID:          "5",
		Title:       "Premium Laptop Bag",
		Description: "Professional leather laptop bag with multiple compartments and premium materials.",
		Price:       "159.99",
		Category:    "Accessories",
		Image:       "photo-1553062407-98eeb64c6a62",
		Rating:      "4.8",
		ReviewCount: 76,
	},
	{
		ID:          "6",
		Title:       "Portable Bluetooth Speaker",
		Description: "High-quality portable speaker with excellent sound quality and long battery life.",
		Price:       "79.99",
		Original:    "99.99",
		Category:    "Electronics",
		Image:       "photo-1608043152269-423dbba4e7e1",
		Rating:      "4.6",
		ReviewCount: 433,
		IsOnSale:    true,
		Badge:       "BESTSELLER",
	},
	{
		ID:          "7",
		Title:       "Professional Camera Kit",
		Description: "Complete professional camera kit with interchangeable lenses and accessories.",
		Price:       "1299.99",
		Category:    "Electronics",
		Image:       "photo-1606983340126-99ab4feaa64a",
		Rating:      "4.9",
		ReviewCount: 67,
	},
	{
		ID:          "8",
		Title:       "Ergonomic Office Chair",
		Description: "Comfortable ergonomic office chair with lumbar support and adjustable height.",
		Price:       "299.99",
		Original:    "399.99",
		Category:    "Furniture",
		Image:       "photo-1586023492125-27b2c045efd7",
		Rating:      "4.3",
		ReviewCount: 128,
		IsOnSale:    true,
		Badge:       "25% OFF",
	},
	{
		ID:          "9",
		Title:       "Classic Cotton T-Shirt",
		Description: "Premium quality 100% cotton t-shirt in various colors and sizes.",
		Price:       "24.99",
		Original:    "29.99",
		Category:    "Clothing",
		Image:       "photo-1521572163474-6864f9cf17ab",
		Rating:      "4.4",
		ReviewCount: 287,
		IsOnSale:    true,
		Badge:       "SALE",
	},
	{
		ID:          "10",
		Title:       "Designer Denim Jeans",
		Description: "Premium designer jeans with perfect fit and lasting comfort.",
		Price:       "89.99",
		Category:    "Clothing",
		Image:       "photo-1542272604-787c3835535d",
		Rating:      "4.7",
		ReviewCount: 145,
	},
	{
		ID:          "11",
		Title:       "Running Sneakers Pro",
		Description: "High-performance running shoes with advanced cushioning and breathable design.",
		Price:       "119.99",
		Original:    "149.99",
		Category:    "Shoes",
		Image:       "photo-1549298916-b41d501d3772",
		Rating:      "4.6",
		ReviewCount: 392,
		IsOnSale:    true,
		Badge:       "20% OFF",
	},
	{
		ID:          "12",
		Title:       "Leather Business Shoes",
		Description: "Elegant leather dress shoes perfect for business and formal occasions.",
		Price:       "179.99",
		Category:    "Shoes",
		Image:       "photo-1449824913935-59a10b8d2000",
		Rating:      "4.8",
		ReviewCount: 78,
		Badge:       "PREMIUM",
	},
	{
		ID:          "13",
		Title:       "Organic Skincare Set",
		Description: "Complete organic skincare routine with natural ingredients for all skin types.",
		Price:       "69.99",
		Original:    "89.99",
		Category:    "Beauty",
		Image:       "photo-1570194065650-d99fb4bedf0a",
		Rating:      "4.5",
		ReviewCount: 234,
		IsOnSale:    true,
		Badge:       "NATURAL",
	},
	{
		ID:          "14",
		Title:       "Professional Makeup Kit",
		Description: "Complete professional makeup kit with high-quality brushes and cosmetics.",
		Price:       "149.99",
		Category:    "Beauty",
		Image:       "photo-1596462502278-27bfdc403348",
		Rating:      "4.9",
		ReviewCount: 167,
		Badge:       "PRO",
	},
	{
		ID:          "15",
		Title:       "Modern Coffee Table",
		Description: "Sleek modern coffee table with tempered glass top and wooden legs.",
		Price:       "229.99",
		Original:    "279.99",
		Category:    "Furniture",
		Image:       "photo-1586023492125-27b2c045efd7",
		Rating:      "4.3",
		ReviewCount: 89,
		IsOnSale:    true,
		Badge:       "18% OFF",
	},
	{
		ID:          "16",
		Title:       "Bookshelf - 5 Tier",
		Description: "Sturdy wooden bookshelf with 5 tiers, perfect for home office or living room.",
		Price:       "199.99",
		Category:    "Furniture",
		Image:       "photo-1507003211169-0a1dd7228f2d",
		Rating:      "4.6",
		ReviewCount: 156,
	},
	{
		ID:          "17",
		Title:       "Yoga Mat Premium",
		Description: "Non-slip premium yoga mat with extra cushioning for comfortable practice.",
		Price:       "39.99",
		Original:    "49.99",
		Category:    "Sports",
		Image:       "photo-1544367567-0f2fcb009e0b",
		Rating:      "4.7",
		ReviewCount: 423,
		IsOnSale:    true,
		Badge:       "FITNESS",
	},
	{
		ID:          "18",
		Title:       "Dumbbells Set - 20kg",
		Description: "Adjustable dumbbell set with comfortable grip, perfect for home workouts.",
		Price:       "89.99",
		Category:    "Sports",
		Image:       "photo-1571019613454-1cb2f99b2d8b",
		Rating:      "4.4",
		ReviewCount: 198,
		Badge:       "STRONG",
	},
	{
		ID:          "19",
		Title:       "Leather Handbag",
		Description: "Elegant leather handbag with multiple compartments and adjustable strap.",
		Price:       "129.99",
		Original:    "159.99",
		Category:    "Accessories",
		Image:       "photo-1553062407-98eeb64c6a62",
		Rating:      "4.8",
		ReviewCount: 267,
		IsOnSale:    true,
		Badge:       "LUXURY",
	},
	{
		ID:          "20",
		Title:       "Wireless Earbuds Pro",
		Description: "Premium wireless earbuds with active noise cancellation and long battery life.",
		Price:       "159.99",
		Original:    "199.99",
		Category:    "Electronics",
		Image:       "photo-1572569511254-d8f925fe2cbb",
		Rating:      "4.5",
		ReviewCount: 334,
		IsOnSale:    true,
		Badge:       "TECH",
	},
}

// productSeeder is implemented by stores that can insert products with
// fixed ids, skipping ids that already exist.
type productSeeder interface {
	SeedProducts(ctx context.Context, products []models.Product) error
}

// SeedProducts returns the seed catalog stamped with createdAt.
func SeedProducts(createdAt time.Time) []models.Product {
	products := make([]models.Product, 0, len(seedCatalog))
	for _, sp := range seedCatalog {
		p := models.Product{
			ID:          sp.ID,
			Title:       sp.Title,
			Description: sp.Description,
			Price:       decimal.RequireFromString(sp.Price),
			Category:    sp.Category,
			Image:       seedImageBase + sp.Image + seedImageParams,
			Rating:      decimal.RequireFromString(sp.Rating),
			ReviewCount: sp.ReviewCount,
			IsOnSale:    sp.IsOnSale,
			CreatedAt:   createdAt,
		}
		if sp.Original != "" {
			original := decimal.RequireFromString(sp.Original)
			p.OriginalPrice = &original
		}
		if sp.Badge != "" {
			badge := sp.Badge
			p.Badge = &badge
		}
		products = append(products, p)
	}
	return products
}

// Seed loads the seed catalog into store.
func Seed(ctx context.Context, store Store) error {
	products := SeedProducts(time.Now().UTC().Truncate(time.Microsecond))

	if seeder, ok := store.(productSeeder); ok {
		if err := seeder.SeedProducts(ctx, products); err != nil {
			return err
		}
		log.Printf("Seeded catalog with %d products", len(products))
		return nil
	}

	for _, p := range products {
		if _, err := store.CreateProduct(ctx, models.NewProduct{
			Title:         p.Title,
			Description:   p.Description,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Category:      p.Category,
			Image:         p.Image,
			Rating:        p.Rating,
			ReviewCount:   p.ReviewCount,
			IsOnSale:      p.IsOnSale,
			Badge:         p.Badge,
		}); err != nil {
			return err
		}
	}
	log.Printf("Seeded catalog with %d products", len(products))
	return nil
}

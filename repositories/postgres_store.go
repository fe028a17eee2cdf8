package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DBTX is the subset of *pgxpool.Pool used by PostgresStore.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresStore persists the collections in PostgreSQL. Rows are ordered by
// their seq column so reads keep insertion order.
type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// now matches the microsecond precision of TIMESTAMPTZ so returned rows equal
// what a later read sees.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

const productColumns = `p.id, p.title, p.description, p.price::text, p.original_price::text,
	p.category, p.image, p.rating::text, p.review_count, p.is_on_sale, p.badge, p.created_at`

const insertProductSQL = `
	INSERT INTO products (id, title, description, price, original_price, category, image,
		rating, review_count, is_on_sale, badge, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func scanProduct(row pgx.Row, extra ...any) (models.Product, error) {
	var (
		p        models.Product
		price    string
		original *string
		rating   string
	)

	dest := append([]any{
		&p.ID, &p.Title, &p.Description, &price, &original,
		&p.Category, &p.Image, &rating, &p.ReviewCount, &p.IsOnSale, &p.Badge, &p.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return p, err
	}

	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return p, fmt.Errorf("invalid price for product %s: %w", p.ID, err)
	}
	if p.Rating, err = decimal.NewFromString(rating); err != nil {
		return p, fmt.Errorf("invalid rating for product %s: %w", p.ID, err)
	}
	if original != nil {
		op, err := decimal.NewFromString(*original)
		if err != nil {
			return p, fmt.Errorf("invalid original price for product %s: %w", p.ID, err)
		}
		p.OriginalPrice = &op
	}
	return p, nil
}

func productArgs(p models.Product) []any {
	var original *string
	if p.OriginalPrice != nil {
		s := p.OriginalPrice.String()
		original = &s
	}
	return []any{
		p.ID, p.Title, p.Description, p.Price.String(), original, p.Category, p.Image,
		p.Rating.String(), p.ReviewCount, p.IsOnSale, p.Badge, p.CreatedAt,
	}
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, `SELECT `+productColumns+` FROM products p ORDER BY p.seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &p, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, input models.NewProduct) (models.Product, error) {
	p := models.Product{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		Image:         input.Image,
		Rating:        input.Rating,
		ReviewCount:   input.ReviewCount,
		IsOnSale:      input.IsOnSale,
		Badge:         input.Badge,
		CreatedAt:     now(),
	}

	if _, err := s.db.Exec(ctx, insertProductSQL, productArgs(p)...); err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) SeedProducts(ctx context.Context, products []models.Product) error {
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(insertProductSQL+` ON CONFLICT (id) DO NOTHING`, productArgs(p)...)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range products {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) ListCartItems(ctx context.Context) ([]models.CartItemWithProduct, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+productColumns+`, c.id, c.product_id, c.quantity, c.created_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		ORDER BY c.seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItemWithProduct{}
	for rows.Next() {
		var item models.CartItemWithProduct
		p, err := scanProduct(rows, &item.ID, &item.ProductID, &item.Quantity, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		item.Product = p
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) scanCartItem(row pgx.Row) (*models.CartItem, error) {
	var item models.CartItem
	err := row.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PostgresStore) GetCartItem(ctx context.Context, productID string) (*models.CartItem, error) {
	item, err := s.scanCartItem(s.db.QueryRow(ctx,
		`SELECT id, product_id, quantity, created_at FROM cart_items WHERE product_id = $1`, productID))
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item for product %s: %w", productID, err)
	}
	return item, nil
}

func (s *PostgresStore) AddToCart(ctx context.Context, productID string, quantity int) (models.CartItem, error) {
	item, err := s.scanCartItem(s.db.QueryRow(ctx, `
		INSERT INTO cart_items (id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, product_id, quantity, created_at`,
		uuid.NewString(), productID, quantity, now()))
	if err != nil {
		return models.CartItem{}, fmt.Errorf("failed to add product %s to cart: %w", productID, err)
	}
	return *item, nil
}

func (s *PostgresStore) UpdateCartItemQuantity(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
	item, err := s.scanCartItem(s.db.QueryRow(ctx, `
		UPDATE cart_items SET quantity = $2 WHERE product_id = $1
		RETURNING id, product_id, quantity, created_at`, productID, quantity))
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item for product %s: %w", productID, err)
	}
	return item, nil
}

func (s *PostgresStore) RemoveFromCart(ctx context.Context, productID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM cart_items WHERE product_id = $1`, productID)
	if err != nil {
		return false, fmt.Errorf("failed to remove product %s from cart: %w", productID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) ClearCart(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListFavorites(ctx context.Context) ([]models.FavoriteWithProduct, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+productColumns+`, f.id, f.product_id, f.created_at
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		ORDER BY f.seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.FavoriteWithProduct{}
	for rows.Next() {
		var fav models.FavoriteWithProduct
		p, err := scanProduct(rows, &fav.ID, &fav.ProductID, &fav.CreatedAt)
		if err != nil {
			return nil, err
		}
		fav.Product = p
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

func (s *PostgresStore) GetFavorite(ctx context.Context, productID string) (*models.Favorite, error) {
	var fav models.Favorite
	err := s.db.QueryRow(ctx, `
		SELECT id, product_id, created_at FROM favorites
		WHERE product_id = $1 ORDER BY seq LIMIT 1`, productID,
	).Scan(&fav.ID, &fav.ProductID, &fav.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite for product %s: %w", productID, err)
	}
	return &fav, nil
}

func (s *PostgresStore) AddToFavorites(ctx context.Context, productID string) (models.Favorite, error) {
	fav := models.Favorite{
		ID:        uuid.NewString(),
		ProductID: productID,
		CreatedAt: now(),
	}
	if _, err := s.db.Exec(ctx,
		`INSERT INTO favorites (id, product_id, created_at) VALUES ($1, $2, $3)`,
		fav.ID, fav.ProductID, fav.CreatedAt,
	); err != nil {
		return models.Favorite{}, fmt.Errorf("failed to add product %s to favorites: %w", productID, err)
	}
	return fav, nil
}

// RemoveFromFavorites deletes the oldest favorite row for productID.
func (s *PostgresStore) RemoveFromFavorites(ctx context.Context, productID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM favorites WHERE id = (
			SELECT id FROM favorites WHERE product_id = $1 ORDER BY seq LIMIT 1
		)`, productID)
	if err != nil {
		return false, fmt.Errorf("failed to remove product %s from favorites: %w", productID, err)
	}
	return tag.RowsAffected() > 0, nil
}

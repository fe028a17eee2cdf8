package repositories

import (
	"context"
	"slices"
	"sync"
	"time"

	"storefront/models"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection in process memory. Each collection is a
// map keyed by entity id plus a slice recording insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	products     map[string]models.Product
	productOrder []string

	cartItems map[string]models.CartItem
	cartOrder []string

	favorites     map[string]models.Favorite
	favoriteOrder []string

	now   func() time.Time
	newID func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:  map[string]models.Product{},
		cartItems: map[string]models.CartItem{},
		favorites: map[string]models.Favorite{},
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *MemoryStore) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		products = append(products, s.products[id])
	}
	return products, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(_ context.Context, input models.NewProduct) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Product{
		ID:            s.newID(),
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
		CreatedAt:     s.now(),
	}
	s.putProduct(p)
	return p, nil
}

func (s *MemoryStore) SeedProducts(_ context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if _, exists := s.products[p.ID]; exists {
			continue
		}
		s.putProduct(p)
	}
	return nil
}

func (s *MemoryStore) putProduct(p models.Product) {
	if _, exists := s.products[p.ID]; !exists {
		s.productOrder = append(s.productOrder, p.ID)
	}
	s.products[p.ID] = p
}

// DeleteProduct removes the product only; cart items and favorites that
// reference it stay in place and are dropped from joined reads.
func (s *MemoryStore) DeleteProduct(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	s.productOrder = removeID(s.productOrder, id)
	return true, nil
}

func (s *MemoryStore) ListCartItems(_ context.Context) ([]models.CartItemWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItemWithProduct, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		item := s.cartItems[id]
		product, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		items = append(items, models.CartItemWithProduct{CartItem: item, Product: product})
	}
	return items, nil
}

func (s *MemoryStore) GetCartItem(_ context.Context, productID string) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.findCartItem(productID)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *MemoryStore) findCartItem(productID string) (models.CartItem, bool) {
	for _, id := range s.cartOrder {
		if item := s.cartItems[id]; item.ProductID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

func (s *MemoryStore) AddToCart(_ context.Context, productID string, quantity int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item, ok := s.findCartItem(productID); ok {
		item.Quantity += quantity
		s.cartItems[item.ID] = item
		return item, nil
	}

	item := models.CartItem{
		ID:        s.newID(),
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.now(),
	}
	s.cartItems[item.ID] = item
	s.cartOrder = append(s.cartOrder, item.ID)
	return item, nil
}

func (s *MemoryStore) UpdateCartItemQuantity(_ context.Context, productID string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findCartItem(productID)
	if !ok {
		return nil, nil
	}
	item.Quantity = quantity
	s.cartItems[item.ID] = item
	return &item, nil
}

func (s *MemoryStore) RemoveFromCart(_ context.Context, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findCartItem(productID)
	if !ok {
		return false, nil
	}
	delete(s.cartItems, item.ID)
	s.cartOrder = removeID(s.cartOrder, item.ID)
	return true, nil
}

func (s *MemoryStore) ClearCart(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartItems = map[string]models.CartItem{}
	s.cartOrder = nil
	return nil
}

func (s *MemoryStore) ListFavorites(_ context.Context) ([]models.FavoriteWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]models.FavoriteWithProduct, 0, len(s.favoriteOrder))
	for _, id := range s.favoriteOrder {
		fav := s.favorites[id]
		product, ok := s.products[fav.ProductID]
		if !ok {
			continue
		}
		favorites = append(favorites, models.FavoriteWithProduct{Favorite: fav, Product: product})
	}
	return favorites, nil
}

func (s *MemoryStore) GetFavorite(_ context.Context, productID string) (*models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fav, ok := s.findFavorite(productID)
	if !ok {
		return nil, nil
	}
	return &fav, nil
}

func (s *MemoryStore) findFavorite(productID string) (models.Favorite, bool) {
	for _, id := range s.favoriteOrder {
		if fav := s.favorites[id]; fav.ProductID == productID {
			return fav, true
		}
	}
	return models.Favorite{}, false
}

func (s *MemoryStore) AddToFavorites(_ context.Context, productID string) (models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fav := models.Favorite{
		ID:        s.newID(),
		ProductID: productID,
		CreatedAt: s.now(),
	}
	s.favorites[fav.ID] = fav
	s.favoriteOrder = append(s.favoriteOrder, fav.ID)
	return fav, nil
}

func (s *MemoryStore) RemoveFromFavorites(_ context.Context, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fav, ok := s.findFavorite(productID)
	if !ok {
		return false, nil
	}
	delete(s.favorites, fav.ID)
	s.favoriteOrder = removeID(s.favoriteOrder, fav.ID)
	return true, nil
}

func removeID(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

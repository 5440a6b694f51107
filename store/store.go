package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/optombazar7-cpu/SportZone/models"
)

// ErrProductMissing reports a cart row whose product is no longer in the
// catalog. This is a data-integrity failure and must be logged distinctly
// from an ordinary not-found.
var ErrProductMissing = errors.New("cart item references missing product")

// collection is a keyed set of entities that remembers insertion order,
// so listings stay stable across requests.
type collection[T any] struct {
	byID  map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Store holds every entity in process memory. State is lost on restart by
// design. A single mutex serializes all access, so each method is atomic
// to observers.
type Store struct {
	mu         sync.Mutex
	users      collection[models.User]
	products   collection[models.Product]
	cartItems  collection[models.CartItem]
	orders     collection[models.Order]
	orderItems collection[models.OrderItem]
}

// New returns a store pre-seeded with the sample catalog.
func New() *Store {
	s := &Store{
		users:      newCollection[models.User](),
		products:   newCollection[models.Product](),
		cartItems:  newCollection[models.CartItem](),
		orders:     newCollection[models.Order](),
		orderItems: newCollection[models.OrderItem](),
	}
	for _, p := range seedProducts() {
		s.products.put(p.ID, p)
	}
	return s
}

func newID() string {
	return uuid.NewString()
}

// ---------- Users ----------

// CreateUser assigns a fresh id and stores the user. Password must already
// be hashed by the caller.
func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = newID()
	s.users.put(u.ID, u)
	return copyUser(u)
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	return copyUser(u), ok
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users.all() {
		if u.Email == email {
			return copyUser(u), true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users.all() {
		if u.Username == username {
			return copyUser(u), true
		}
	}
	return models.User{}, false
}

// ---------- Products ----------

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyProducts(s.products.all())
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.get(id)
	return copyProduct(p), ok
}

func (s *Store) ProductsByCategory(category string) []models.Product {
	return s.filterProducts(func(p models.Product) bool {
		return p.Category == category
	})
}

func (s *Store) SpecialOffers() []models.Product {
	return s.filterProducts(func(p models.Product) bool { return p.IsSpecialOffer })
}

func (s *Store) BestSellers() []models.Product {
	return s.filterProducts(func(p models.Product) bool { return p.IsBestSeller })
}

func (s *Store) NewArrivals() []models.Product {
	return s.filterProducts(func(p models.Product) bool { return p.IsNewArrival })
}

// SearchProducts matches the query case-insensitively against name,
// description and category. The caller guarantees a non-empty query.
func (s *Store) SearchProducts(query string) []models.Product {
	q := strings.ToLower(query)
	return s.filterProducts(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

// CreateProduct assigns a fresh id and createdAt and stores the product.
// Optional-field defaults are resolved at the boundary.
func (s *Store) CreateProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	p.CreatedAt = time.Now()
	s.products.put(p.ID, p)
	return copyProduct(p)
}

func (s *Store) filterProducts(keep func(models.Product) bool) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, p := range s.products.all() {
		if keep(p) {
			out = append(out, copyProduct(p))
		}
	}
	return out
}

// ---------- Cart ----------

// CartLines returns every cart row for the session joined with its
// product. A row referencing a product absent from the catalog yields
// ErrProductMissing: the catalog and the cart have diverged.
func (s *Store) CartLines(sessionID string) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []models.CartLine
	for _, item := range s.cartItems.all() {
		if item.SessionID != sessionID {
			continue
		}
		product, ok := s.products.get(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("%w: product %s (cart item %s)", ErrProductMissing, item.ProductID, item.ID)
		}
		lines = append(lines, models.CartLine{
			CartItem: copyCartItem(item),
			Product:  copyProduct(product),
		})
	}
	return lines, nil
}

// AddCartItem always appends a new row; repeated adds for the same
// product and size are kept as separate rows, never merged. Quantity
// defaults to 1 when unset.
func (s *Store) AddCartItem(item models.CartItem) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity == 0 {
		item.Quantity = 1
	}
	item.ID = newID()
	item.CreatedAt = time.Now()
	s.cartItems.put(item.ID, item)
	return copyCartItem(item)
}

// UpdateCartQuantity replaces the quantity of an existing row. Quantities
// below 1 are rejected at the boundary before this is reached.
func (s *Store) UpdateCartQuantity(id string, quantity int) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems.get(id)
	if !ok {
		return models.CartItem{}, false
	}
	item.Quantity = quantity
	s.cartItems.put(id, item)
	return copyCartItem(item), true
}

func (s *Store) RemoveCartItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartItems.remove(id)
}

// ClearCart deletes every row for the session. Clearing an empty or
// unknown session succeeds silently.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doomed []string
	for _, item := range s.cartItems.all() {
		if item.SessionID == sessionID {
			doomed = append(doomed, item.ID)
		}
	}
	for _, id := range doomed {
		s.cartItems.remove(id)
	}
}

// ---------- Orders ----------

// CreateOrder stores the order with a fresh id and createdAt. Status is
// always forced to pending regardless of what the caller supplied.
func (s *Store) CreateOrder(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = newID()
	o.Status = models.OrderStatusPending
	o.CreatedAt = time.Now()
	s.orders.put(o.ID, o)
	return copyOrder(o)
}

// CreateOrderItem stores one line item. Price is the caller-captured unit
// price, never re-derived from the current catalog.
func (s *Store) CreateOrderItem(item models.OrderItem) models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = newID()
	s.orderItems.put(item.ID, item)
	return copyOrderItem(item)
}

func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders.get(id)
	return copyOrder(o), ok
}

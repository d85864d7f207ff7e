package backendtest

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"atelier-storefront/internal/models"
)

// userRecord is a stored account; the hash never leaves the store.
type userRecord struct {
	models.User
	PasswordHash string
}

// cartLine is the stored form of a cart line. Product details and money
// are resolved against the catalog on every read, so price edits show up
// in carts but never in placed orders.
type cartLine struct {
	ID        string
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// store is the in-memory backing state, the moral equivalent of the
// document collections behind the real backend.
type store struct {
	mu sync.RWMutex

	usersByID    map[string]*userRecord
	usersByEmail map[string]*userRecord
	usersByName  map[string]*userRecord

	products     map[string]models.Product
	productOrder []string

	carts  map[string][]cartLine // keyed by user id
	orders []models.Order        // newest first
}

func newStore() *store {
	return &store{
		usersByID:    make(map[string]*userRecord),
		usersByEmail: make(map[string]*userRecord),
		usersByName:  make(map[string]*userRecord),
		products:     make(map[string]models.Product),
		carts:        make(map[string][]cartLine),
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func newID() string {
	return uuid.NewString()
}

func (s *store) createUser(username, email, passwordHash string, isAdmin bool) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usersByEmail[email]; exists {
		return nil, false
	}
	if _, exists := s.usersByName[username]; exists {
		return nil, false
	}
	rec := &userRecord{
		User: models.User{
			ID:        uuid.NewString(),
			Username:  username,
			Email:     email,
			IsAdmin:   isAdmin,
			CreatedAt: nowStamp(),
		},
		PasswordHash: passwordHash,
	}
	s.usersByID[rec.ID] = rec
	s.usersByEmail[email] = rec
	s.usersByName[username] = rec
	s.carts[rec.ID] = []cartLine{}
	return rec, true
}

func (s *store) userByEmail(email string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.usersByEmail[email]
	return rec, ok
}

func (s *store) userByID(id string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.usersByID[id]
	return rec, ok
}

func (s *store) addProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[p.ID]; !exists {
		s.productOrder = append(s.productOrder, p.ID)
	}
	s.products[p.ID] = p
}

func (s *store) product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *store) updateProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *store) deleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	for i, pid := range s.productOrder {
		if pid == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return true
}

func (s *store) listProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out
}

func (s *store) productCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *store) categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, id := range s.productOrder {
		cat := s.products[id].Category
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	sort.Strings(out)
	return out
}

// cartSnapshot resolves the user's stored lines into the wire cart.
// item_count is the sum of quantities across lines.
func (s *store) cartSnapshot(userID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart := models.EmptyCart()
	for _, line := range s.carts[userID] {
		product, ok := s.products[line.ProductID]
		if !ok {
			continue
		}
		subtotal := product.Price * float64(line.Quantity)
		cart.Items = append(cart.Items, models.CartItem{
			ID:           line.ID,
			ProductID:    line.ProductID,
			ProductName:  product.Name,
			ProductImage: product.ImageURL,
			Price:        product.Price,
			Quantity:     line.Quantity,
			Size:         line.Size,
			Color:        line.Color,
			Subtotal:     subtotal,
		})
		cart.Total += subtotal
		cart.ItemCount += line.Quantity
	}
	return cart
}

// addCartLine merges by (product, size, color): an existing variant line
// grows instead of a duplicate appearing.
func (s *store) addCartLine(userID, productID, size, color string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Size == size && lines[i].Color == color {
			lines[i].Quantity += quantity
			s.carts[userID] = lines
			return
		}
	}
	s.carts[userID] = append(lines, cartLine{
		ID:        uuid.NewString(),
		ProductID: productID,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
}

func (s *store) updateCartLine(userID, lineID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Quantity = quantity
			s.carts[userID] = lines
			return true
		}
	}
	return false
}

func (s *store) removeCartLine(userID, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == lineID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

func (s *store) clearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = []cartLine{}
}

// placeOrder snapshots the user's cart into an immutable order and clears
// the cart in the same critical section.
func (s *store) placeOrder(userID string, addr models.ShippingAddress) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	if len(lines) == 0 {
		return models.Order{}, false
	}
	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		ShippingAddress: addr,
		Status:          models.OrderStatusConfirmed,
		CreatedAt:       nowStamp(),
	}
	for _, line := range lines {
		product, ok := s.products[line.ProductID]
		if !ok {
			continue
		}
		subtotal := product.Price * float64(line.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  product.Name,
			ProductImage: product.ImageURL,
			Price:        product.Price,
			Quantity:     line.Quantity,
			Size:         line.Size,
			Color:        line.Color,
			Subtotal:     subtotal,
		})
		order.Total += subtotal
	}
	s.orders = append([]models.Order{order}, s.orders...)
	s.carts[userID] = []cartLine{}
	return order, true
}

func (s *store) ordersForUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *store) orderForUser(userID, orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == orderID && o.UserID == userID {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *store) allOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *store) setOrderStatus(orderID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}

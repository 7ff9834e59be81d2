package services

import (
	"sync"

	"markethub/internal/models"
)

// CartService owns the session's shopping cart: an ordered list of line
// items keyed by product id. At most one line exists per product id and
// every line's quantity is >= 1; both invariants hold after every
// mutation.
type CartService struct {
	items []models.CartItem
	mu    sync.RWMutex
}

// NewCartService creates an empty cart.
func NewCartService() *CartService {
	return &CartService{}
}

// AddItem puts a product into the cart. If a line with the same product
// id already exists its quantity is incremented and its position kept;
// otherwise a new line with quantity 1 is appended. The product's fields
// are snapshotted at add time, so later catalog changes do not affect
// lines already in the cart.
func (s *CartService) AddItem(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
}

// RemoveItem deletes the line with the given product id. Returns
// ErrItemNotFound if no such line exists; the cart is unchanged in that
// case, so repeated removes are harmless.
func (s *CartService) RemoveItem(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(productID)
}

// SetQuantity sets the quantity of an existing line, keeping its
// position. A quantity <= 0 removes the line instead. An absent id is
// reported as ErrItemNotFound and nothing changes: adding is AddItem's
// job, not SetQuantity's.
func (s *CartService) SetQuantity(productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *CartService) removeLocked(productID int) error {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Items returns a copy of the cart lines in first-add order.
func (s *CartService) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total returns the sum of price times quantity over all lines, in whole
// rubles. An empty cart totals 0.
func (s *CartService) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// Count returns the sum of quantities over all lines. This feeds the
// cart badge, so it counts units, not distinct lines.
func (s *CartService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

package store

import (
	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/models"
)

// Carts are partitioned by the caller's cart session id so concurrent
// clients never see each other's lines.

// AddToCart merges by the (productID, size, color) triple within one cart:
// an existing line gets its quantity incremented, otherwise a new line is
// appended. No stock ceiling is enforced here.
func (s *Store) AddToCart(cartID string, product models.Product, size, color string, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.state.Carts[cartID]
	key := models.CartKey{ProductID: product.ID, Size: size, Color: color}
	for i := range cart {
		if cart[i].Key() == key {
			cart[i].Quantity += quantity
			s.save()
			return
		}
	}

	if s.state.Carts == nil {
		s.state.Carts = make(map[string][]models.CartItem)
	}
	s.state.Carts[cartID] = append(cart, models.CartItem{
		Product:       product,
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      quantity,
	})
	s.save()
}

// UpdateCartQuantity sets the quantity for a line; zero or negative removes
// the line.
func (s *Store) UpdateCartQuantity(cartID string, key models.CartKey, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeCartLineLocked(cartID, key)
		s.save()
		return
	}

	cart := s.state.Carts[cartID]
	for i := range cart {
		if cart[i].Key() == key {
			cart[i].Quantity = quantity
			break
		}
	}
	s.save()
}

// RemoveFromCart deletes the line matching the triple.
func (s *Store) RemoveFromCart(cartID string, key models.CartKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeCartLineLocked(cartID, key)
	s.save()
}

func (s *Store) removeCartLineLocked(cartID string, key models.CartKey) {
	cart := s.state.Carts[cartID]
	filtered := cart[:0]
	for _, item := range cart {
		if item.Key() != key {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		delete(s.state.Carts, cartID)
		return
	}
	s.state.Carts[cartID] = filtered
}

// ClearCart empties one cart, e.g. after checkout.
func (s *Store) ClearCart(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Carts, cartID)
	s.save()
}

// CartItems returns a snapshot of one cart's lines.
func (s *Store) CartItems(cartID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.state.Carts[cartID]
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}

// CartSubtotal sums price times quantity across one cart's lines.
func (s *Store) CartSubtotal(cartID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range s.state.Carts[cartID] {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// CartCount is the total quantity across one cart's lines.
func (s *Store) CartCount(cartID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.state.Carts[cartID] {
		count += item.Quantity
	}
	return count
}

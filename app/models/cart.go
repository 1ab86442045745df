package models

import "github.com/shopspring/decimal"

// CartItem is one line in a cart. Identity is the (productID, size, color)
// triple: adding the same triple again increments Quantity instead of
// appending a second line.
type CartItem struct {
	Product       Product `json:"product"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
	Quantity      int     `json:"quantity"`
}

// Key returns the identity triple for merging.
func (ci CartItem) Key() CartKey {
	return CartKey{ProductID: ci.Product.ID, Size: ci.SelectedSize, Color: ci.SelectedColor}
}

type CartKey struct {
	ProductID string
	Size      string
	Color     string
}

// LineTotal is price times quantity for this line.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

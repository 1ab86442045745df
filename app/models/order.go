package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// orderTransitions is the forward path plus cancellation from any
// non-terminal state. Delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPacked, OrderStatusCancelled},
	OrderStatusPacked:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ValidOrderStatus reports whether s names a known status.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed move.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status move. Callers that need the original
// anything-goes admin behavior pass their override flag to the store, not
// here.
func Transition(from, to OrderStatus) error {
	if !ValidOrderStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// StatusChange is one entry in an order's audit trail.
type StatusChange struct {
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	Notes     string      `json:"notes,omitempty"`
	ChangedAt time.Time   `json:"changedAt"`
}

// OrderItem is a snapshot of a product at purchase time, not a live
// reference. Price changes after checkout do not touch placed orders.
type OrderItem struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	SelectedSize  string          `json:"selectedSize"`
	SelectedColor string          `json:"selectedColor"`
	Quantity      int             `json:"quantity"`
}

type Order struct {
	ID            string          `json:"id"`
	OrderCode     string          `json:"orderCode"`
	CustomerName  string          `json:"customerName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	Status        OrderStatus     `json:"status"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	StatusHistory []StatusChange  `json:"statusHistory"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type OrderRow struct {
	ID            string          `gorm:"size:64;not null;uniqueIndex;primary_key"`
	OrderCode     string          `gorm:"size:64;uniqueIndex;not null"`
	CustomerName  string          `gorm:"size:255"`
	Email         string          `gorm:"size:255;index"`
	Phone         string          `gorm:"size:32"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(16,2)"`
	ShippingCost  decimal.Decimal `gorm:"type:decimal(16,2)"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(16,2)"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(16,2)"`
	Status        string          `gorm:"size:20;default:'pending';index"`
	Address       string          `gorm:"type:text"`
	PaymentMethod string          `gorm:"size:50"`
	PaymentStatus string          `gorm:"size:50"`
	StatusHistory string          `gorm:"type:text"`
	Items         []OrderItemRow  `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (OrderRow) TableName() string { return "orders" }

type OrderItemRow struct {
	ID            string          `gorm:"size:64;not null;uniqueIndex;primary_key"`
	OrderID       string          `gorm:"size:64;index"`
	ProductID     string          `gorm:"size:64;index"`
	Name          string          `gorm:"size:255"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2)"`
	SelectedSize  string          `gorm:"size:50"`
	SelectedColor string          `gorm:"size:50"`
	Quantity      int             `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrderItemRow) TableName() string { return "order_items" }

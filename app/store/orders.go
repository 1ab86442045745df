package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srikanth99-bot/looom-shop/app/helpers"
	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/utils/calc"
	"github.com/srikanth99-bot/looom-shop/app/utils/format"
)

// OrderDraft is what checkout submits. Totals are computed here, never
// trusted from the caller.
type OrderDraft struct {
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	Items         []models.OrderItem
}

// CreateOrder synthesizes the order, computes totals (5% tax rounded to the
// rupee, flat shipping under the free threshold), starts the status history
// at pending and returns the new id synchronously. Backend persistence is
// best-effort and asynchronous.
func (s *Store) CreateOrder(draft OrderDraft) (string, error) {
	if len(draft.Items) == 0 {
		return "", fmt.Errorf("cannot create an order without items")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	subtotal := orderSubtotal(draft.Items)
	shipping := calc.CalculateShipping(subtotal)
	tax := calc.CalculateTax(subtotal)
	total := calc.CalculateGrandTotal(subtotal, shipping, tax)

	order := models.Order{
		ID:            helpers.NewID("order"),
		OrderCode:     strings.ToUpper(uuid.New().String()[:8]),
		CustomerName:  draft.CustomerName,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Items:         draft.Items,
		Subtotal:      subtotal,
		ShippingCost:  shipping,
		TaxAmount:     tax,
		GrandTotal:    total,
		Status:        models.OrderStatusPending,
		Address:       draft.Address,
		PaymentMethod: draft.PaymentMethod,
		PaymentStatus: "pending",
		StatusHistory: []models.StatusChange{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.state.Orders = append(s.state.Orders, order)
	s.state.Payments = append(s.state.Payments, models.Payment{
		ID:        helpers.NewID("pay"),
		OrderID:   order.ID,
		Amount:    total,
		Method:    draft.PaymentMethod,
		Status:    "pending",
		CreatedAt: now,
	})
	s.addNotificationLocked(fmt.Sprintf("Order %s placed for %s", order.OrderCode, format.Rupee(total)))
	s.save()

	if s.repos.Orders != nil {
		go s.persistOrder(order)
	}

	return order.ID, nil
}

// UpdateOrderStatus moves an order through the status machine and appends to
// its audit trail. Invalid moves are rejected unless the store was built
// with WithAllowAnyTransition.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("order %s not found", orderID)
	}

	order := &s.state.Orders[idx]
	if s.allowAnyMove {
		if !models.ValidOrderStatus(status) {
			return fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, status)
		}
	} else if err := models.Transition(order.Status, status); err != nil {
		return err
	}

	now := s.now()
	order.StatusHistory = append(order.StatusHistory, models.StatusChange{
		From:      order.Status,
		To:        status,
		Notes:     notes,
		ChangedAt: now,
	})
	order.Status = status
	order.UpdatedAt = now

	s.addNotificationLocked(fmt.Sprintf("Order %s is now %s", order.OrderCode, status))
	s.save()

	if s.repos.Orders != nil {
		history := marshalHistory(order.StatusHistory)
		id := order.ID
		go func() {
			if err := s.repos.Orders.UpdateStatus(context.Background(), id, status, history); err != nil {
				log.Printf("UpdateOrderStatus: backend persist for %s failed: %v", id, err)
			}
		}()
	}

	return nil
}

// Orders returns a snapshot of all orders, newest first ordering is the
// caller's concern.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.state.Orders))
	copy(out, s.state.Orders)
	return out
}

func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.state.Orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

func (s *Store) persistOrder(order models.Order) {
	row := orderToRow(order)
	if err := s.repos.Orders.Create(context.Background(), &row); err != nil {
		log.Printf("CreateOrder: backend persist for %s failed: %v", order.ID, err)
	}
}

func orderSubtotal(items []models.OrderItem) (subtotal decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func marshalHistory(history []models.StatusChange) string {
	b, err := json.Marshal(history)
	if err != nil {
		log.Printf("marshalHistory: %v", err)
		return "[]"
	}
	return string(b)
}

func orderToRow(order models.Order) models.OrderRow {
	items := make([]models.OrderItemRow, 0, len(order.Items))
	for i, item := range order.Items {
		items = append(items, models.OrderItemRow{
			ID:            fmt.Sprintf("%s_item_%d", order.ID, i+1),
			OrderID:       order.ID,
			ProductID:     item.ProductID,
			Name:          item.Name,
			Price:         item.Price,
			SelectedSize:  item.SelectedSize,
			SelectedColor: item.SelectedColor,
			Quantity:      item.Quantity,
			CreatedAt:     order.CreatedAt,
			UpdatedAt:     order.UpdatedAt,
		})
	}

	return models.OrderRow{
		ID:            order.ID,
		OrderCode:     order.OrderCode,
		CustomerName:  order.CustomerName,
		Email:         order.Email,
		Phone:         order.Phone,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		TaxAmount:     order.TaxAmount,
		GrandTotal:    order.GrandTotal,
		Status:        string(order.Status),
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		StatusHistory: marshalHistory(order.StatusHistory),
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

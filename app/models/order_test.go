package models

import (
	"errors"
	"testing"
)

func TestTransitionHappyPath(t *testing.T) {
	path := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPacked,
		OrderStatusShipped,
		OrderStatusDelivered,
	}
	for i := 0; i < len(path)-1; i++ {
		if err := Transition(path[i], path[i+1]); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", path[i], path[i+1], err)
		}
	}
}

func TestTransitionRejectsSkips(t *testing.T) {
	cases := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusPacked},
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusConfirmed, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusConfirmed},
	}
	for _, c := range cases {
		err := Transition(c.from, c.to)
		if err == nil {
			t.Fatalf("%s -> %s should be rejected", c.from, c.to)
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	}
}

func TestCancelAllowedFromNonTerminal(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPacked, OrderStatusShipped} {
		if !CanTransition(from, OrderStatusCancelled) {
			t.Fatalf("%s -> cancelled should be allowed", from)
		}
	}
}

func TestTerminalStatesHaveNoMoves(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		for _, to := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPacked, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
			if CanTransition(from, to) {
				t.Fatalf("%s -> %s should be rejected, %s is terminal", from, to, from)
			}
		}
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	if err := Transition(OrderStatusPending, "refunded"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unknown status must map to ErrInvalidTransition, got %v", err)
	}
	if ValidOrderStatus("refunded") {
		t.Fatal("refunded is not a known status")
	}
}

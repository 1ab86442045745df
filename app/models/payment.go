package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a record of an attempted payment against an order. Gateway
// integration is out of scope; these records track method and outcome only.
type Payment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

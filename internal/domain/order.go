package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as stored; new orders start as pending and are moved
// along by the back office.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// CustomerInfo is the contact block captured at checkout. Name and
// email are required; phone and address are optional.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is a submitted cart. ID and CreatedAt are assigned by the
// server on acceptance; clients never invent them.
type Order struct {
	ID        string          `json:"id"`
	Items     []CartItem      `json:"items"`
	Customer  CustomerInfo    `json:"customer"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

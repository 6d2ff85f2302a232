package domain

import "github.com/shopspring/decimal"

// CartItem is a product reference plus the fields snapshotted at
// add-time. Title, price and image are frozen when the item first
// enters the cart; only Qty changes afterwards.
type CartItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	Image     string          `json:"image,omitempty"`
}

// LineTotal returns price * qty for this entry.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Cart is the in-session aggregate of selected products. Invariant:
// at most one entry per distinct ProductID. Item order is insertion
// order and matters only for display.
type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemCount is the sum of all quantities, recomputed on every call.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

// Subtotal is the sum of line totals, recomputed on every call so it
// can never drift from Items.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

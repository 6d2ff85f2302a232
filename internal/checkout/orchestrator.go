package checkout

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"manox/internal/cart"
	"manox/internal/domain"

	"github.com/shopspring/decimal"
)

// FlatShippingRate is charged whenever the subtotal is positive; an
// empty cart ships for free because it never ships at all.
var FlatShippingRate = decimal.RequireFromString("5.99")

// Status is the orchestrator's submission state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// OrderRequest is the payload sent to the order service.
type OrderRequest struct {
	Items    []domain.CartItem   `json:"items"`
	Customer domain.CustomerInfo `json:"customer"`
	Subtotal decimal.Decimal     `json:"subtotal"`
	Shipping decimal.Decimal     `json:"shipping"`
	Total    decimal.Decimal     `json:"total"`
}

// OrderPlacer submits an order and returns the authoritative copy
// with the server-assigned id and timestamp.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (*domain.Order, error)
}

// Orchestrator drives a checkout session through
// idle -> submitting -> succeeded, or idle -> submitting -> failed ->
// (Reset) -> idle. The cart is cleared only on confirmed success;
// every failure path leaves it intact.
type Orchestrator struct {
	mu     sync.Mutex
	status Status
	cart   *cart.Facade
	orders OrderPlacer
	logger *log.Logger
}

func New(cartFacade *cart.Facade, orders OrderPlacer, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Orchestrator{
		status: StatusIdle,
		cart:   cartFacade,
		orders: orders,
		logger: logger,
	}
}

// Status returns the current submission state.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Reset returns a failed (or succeeded) session to idle so another
// attempt can be made. Resetting an idle session is a no-op.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status != StatusSubmitting {
		o.status = StatusIdle
	}
}

// Submit validates the customer info and the cart, computes totals
// over a snapshot, and issues exactly one order-creation request. On
// confirmed success the cart is cleared (cascading to its store); on
// any failure the cart keeps its contents and the same order can be
// resubmitted after Reset.
func (o *Orchestrator) Submit(ctx context.Context, info domain.CustomerInfo) (*domain.Order, error) {
	o.mu.Lock()
	if o.status == StatusSubmitting {
		o.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}

	// Validation happens before any I/O; no request leaves on failure.
	items := o.cart.Items()
	if verr := validate(info, items); verr != nil {
		o.mu.Unlock()
		return nil, verr
	}

	snapshot := domain.Cart{Items: items}
	subtotal := snapshot.Subtotal()
	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = FlatShippingRate
	}

	o.status = StatusSubmitting
	o.mu.Unlock()

	req := OrderRequest{
		Items:    items,
		Customer: info,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}

	order, err := o.orders.PlaceOrder(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.status = StatusFailed
		o.logger.Printf("checkout: order submission failed: %v", err)
		return nil, &SubmissionError{Err: err}
	}

	o.status = StatusSucceeded
	o.cart.Clear(ctx)
	o.logger.Printf("checkout: order %s placed, total=%s", order.ID, order.Total)
	return order, nil
}

func validate(info domain.CustomerInfo, items []domain.CartItem) *ValidationError {
	if strings.TrimSpace(info.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(info.Email) == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if len(items) == 0 {
		return &ValidationError{Field: "cart", Reason: "empty"}
	}
	return nil
}

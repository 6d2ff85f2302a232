package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"manox/internal/cart"
	"manox/internal/cartstore"
	"manox/internal/domain"
)

type stubPlacer struct {
	mu       sync.Mutex
	order    *domain.Order
	err      error
	calls    int
	lastReq  OrderRequest
	blockCh  chan struct{} // when set, PlaceOrder blocks until closed
	entered  chan struct{} // signals a call is in flight
}

func (s *stubPlacer) PlaceOrder(_ context.Context, req OrderRequest) (*domain.Order, error) {
	s.mu.Lock()
	s.calls++
	s.lastReq = req
	block := s.blockCh
	entered := s.entered
	s.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if block != nil {
		<-block
	}
	return s.order, s.err
}

func (s *stubPlacer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func customer() domain.CustomerInfo {
	return domain.CustomerInfo{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "555-0101",
		Address: "1 Via Roma",
	}
}

func cartWith(t *testing.T, items ...domain.CartItem) *cart.Facade {
	t.Helper()
	store := cartstore.NewMemory()
	store.Seed(domain.Cart{Items: items})
	return cart.New(context.Background(), store, nil)
}

func lineItem(id, price string, qty int) domain.CartItem {
	return domain.CartItem{
		ProductID: id,
		Title:     id,
		Price:     decimal.RequireFromString(price),
		Qty:       qty,
	}
}

func TestSubmit_Success(t *testing.T) {
	basket := cartWith(t, lineItem("p1", "10.00", 2))
	placer := &stubPlacer{order: &domain.Order{
		ID:    "ord-1",
		Total: decimal.RequireFromString("25.99"),
	}}
	co := New(basket, placer, nil)

	order, err := co.Submit(context.Background(), customer())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.ID != "ord-1" {
		t.Fatalf("expected server order returned, got %+v", order)
	}
	if co.Status() != StatusSucceeded {
		t.Fatalf("expected status succeeded, got %s", co.Status())
	}
	if !basket.State().IsEmpty() {
		t.Fatalf("expected cart cleared after success")
	}

	req := placer.lastReq
	if !req.Subtotal.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected subtotal 20.00, got %s", req.Subtotal)
	}
	if !req.Shipping.Equal(FlatShippingRate) {
		t.Fatalf("expected flat shipping, got %s", req.Shipping)
	}
	if !req.Total.Equal(decimal.RequireFromString("25.99")) {
		t.Fatalf("expected total 25.99, got %s", req.Total)
	}
}

func TestSubmit_FailureKeepsCartAndAllowsRetry(t *testing.T) {
	basket := cartWith(t, lineItem("p1", "4.00", 1))
	placer := &stubPlacer{err: errors.New("connection refused")}
	co := New(basket, placer, nil)

	_, err := co.Submit(context.Background(), customer())
	var serr *SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SubmissionError, got %T: %v", err, err)
	}
	if co.Status() != StatusFailed {
		t.Fatalf("expected status failed, got %s", co.Status())
	}
	if basket.State().IsEmpty() {
		t.Fatalf("expected cart preserved after failure")
	}

	// Recover and retry with the same contents.
	co.Reset()
	if co.Status() != StatusIdle {
		t.Fatalf("expected idle after reset, got %s", co.Status())
	}

	placer.mu.Lock()
	placer.err = nil
	placer.order = &domain.Order{ID: "ord-2"}
	placer.mu.Unlock()

	order, err := co.Submit(context.Background(), customer())
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if order.ID != "ord-2" {
		t.Fatalf("expected retried order, got %+v", order)
	}
	if placer.callCount() != 2 {
		t.Fatalf("expected 2 submissions, got %d", placer.callCount())
	}
}

func TestSubmit_ValidationBlocksBeforeIO(t *testing.T) {
	placer := &stubPlacer{}

	tests := []struct {
		name  string
		info  domain.CustomerInfo
		items []domain.CartItem
		field string
	}{
		{"missing name", domain.CustomerInfo{Email: "a@b.c"}, []domain.CartItem{lineItem("p1", "4.00", 1)}, "name"},
		{"missing email", domain.CustomerInfo{Name: "Ada"}, []domain.CartItem{lineItem("p1", "4.00", 1)}, "email"},
		{"empty cart", customer(), nil, "cart"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			basket := cartWith(t, tc.items...)
			co := New(basket, placer, nil)

			_, err := co.Submit(context.Background(), tc.info)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
			if co.Status() != StatusIdle {
				t.Fatalf("expected status to stay idle, got %s", co.Status())
			}
		})
	}

	if placer.callCount() != 0 {
		t.Fatalf("expected zero order requests, got %d", placer.callCount())
	}
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	basket := cartWith(t, lineItem("p1", "4.00", 1))
	placer := &stubPlacer{
		order:   &domain.Order{ID: "ord-1"},
		blockCh: make(chan struct{}),
		entered: make(chan struct{}),
	}
	co := New(basket, placer, nil)

	done := make(chan error, 1)
	go func() {
		_, err := co.Submit(context.Background(), customer())
		done <- err
	}()

	select {
	case <-placer.entered:
	case <-time.After(time.Second):
		t.Fatalf("first submission never reached the order service")
	}

	if _, err := co.Submit(context.Background(), customer()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	// Reset must not interrupt an in-flight submission.
	co.Reset()
	if co.Status() != StatusSubmitting {
		t.Fatalf("expected reset to be ignored while submitting, got %s", co.Status())
	}

	close(placer.blockCh)
	if err := <-done; err != nil {
		t.Fatalf("first submission: %v", err)
	}
	if placer.callCount() != 1 {
		t.Fatalf("expected exactly one order request, got %d", placer.callCount())
	}
}

func TestSubmit_ShippingZeroWhenSubtotalZero(t *testing.T) {
	basket := cartWith(t, lineItem("freebie", "0.00", 1))
	placer := &stubPlacer{order: &domain.Order{ID: "ord-1"}}
	co := New(basket, placer, nil)

	if _, err := co.Submit(context.Background(), customer()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !placer.lastReq.Shipping.IsZero() {
		t.Fatalf("expected zero shipping for zero subtotal, got %s", placer.lastReq.Shipping)
	}
	if !placer.lastReq.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", placer.lastReq.Total)
	}
}

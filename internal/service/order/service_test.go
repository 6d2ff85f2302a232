package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"manox/internal/domain"
)

type stubRepo struct {
	created       *domain.Order
	createErr     error
	lastCreated   domain.Order
	createCalls   int
	recent        []domain.Order
	lastLimit     int
	updated       *domain.Order
	updateErr     error
	lastUpdateID  string
	lastNewStatus string
}

func (s *stubRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastCreated = o
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	cp := o
	return &cp, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.created, nil
}

func (s *stubRepo) ListRecent(_ context.Context, limit int) ([]domain.Order, error) {
	s.lastLimit = limit
	return s.recent, nil
}

func (s *stubRepo) ListPage(_ context.Context, _, _ int) ([]domain.Order, int, error) {
	return s.recent, len(s.recent), nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Order, error) {
	s.lastUpdateID = id
	s.lastNewStatus = status
	return s.updated, s.updateErr
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validOrder() domain.Order {
	return domain.Order{
		Items: []domain.CartItem{{
			ProductID: "p1",
			Title:     "Bangles",
			Price:     money("4.00"),
			Qty:       2,
		}},
		Customer: domain.CustomerInfo{Name: "Ada", Email: "ada@example.com"},
		Subtotal: money("8.00"),
		Shipping: money("5.99"),
		Total:    money("13.99"),
	}
}

func TestPlace_RejectsEmptyItems(t *testing.T) {
	svc := New(&stubRepo{})

	o := validOrder()
	o.Items = nil
	if _, err := svc.Place(context.Background(), o); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestPlace_RejectsMissingCustomer(t *testing.T) {
	svc := New(&stubRepo{})

	o := validOrder()
	o.Customer.Email = "  "
	if _, err := svc.Place(context.Background(), o); !errors.Is(err, ErrMissingCustomer) {
		t.Fatalf("expected ErrMissingCustomer, got %v", err)
	}
}

func TestPlace_RejectsZeroQty(t *testing.T) {
	svc := New(&stubRepo{})

	o := validOrder()
	o.Items[0].Qty = 0
	if _, err := svc.Place(context.Background(), o); !errors.Is(err, ErrInvalidQty) {
		t.Fatalf("expected ErrInvalidQty, got %v", err)
	}
}

func TestPlace_ForcesPendingStatus(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	o := validOrder()
	o.Status = domain.OrderStatusDelivered
	if _, err := svc.Place(context.Background(), o); err != nil {
		t.Fatalf("place: %v", err)
	}
	if repo.lastCreated.Status != domain.OrderStatusPending {
		t.Fatalf("expected status forced to pending, got %q", repo.lastCreated.Status)
	}
}

func TestPlace_RecomputesMissingAmounts(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	o := validOrder()
	o.Subtotal = decimal.Zero
	o.Total = decimal.Zero
	if _, err := svc.Place(context.Background(), o); err != nil {
		t.Fatalf("place: %v", err)
	}
	if !repo.lastCreated.Subtotal.Equal(money("8.00")) {
		t.Fatalf("expected subtotal recomputed to 8.00, got %s", repo.lastCreated.Subtotal)
	}
	if !repo.lastCreated.Total.Equal(money("13.99")) {
		t.Fatalf("expected total recomputed to 13.99, got %s", repo.lastCreated.Total)
	}
}

func TestPlace_KeepsSubmittedAmounts(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	o := validOrder()
	if _, err := svc.Place(context.Background(), o); err != nil {
		t.Fatalf("place: %v", err)
	}
	if !repo.lastCreated.Total.Equal(money("13.99")) {
		t.Fatalf("expected submitted total kept, got %s", repo.lastCreated.Total)
	}
}

func TestListRecent_CapsLimit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if _, err := svc.ListRecent(context.Background(), 1000); err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if repo.lastLimit != 50 {
		t.Fatalf("expected limit capped at 50, got %d", repo.lastLimit)
	}

	if _, err := svc.ListRecent(context.Background(), 5); err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if repo.lastLimit != 5 {
		t.Fatalf("expected limit 5 passed through, got %d", repo.lastLimit)
	}
}

func TestListRecent_NeverReturnsNil(t *testing.T) {
	svc := New(&stubRepo{})

	list, err := svc.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if list == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if _, err := svc.UpdateStatus(context.Background(), "ord-1", "teleported"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.lastUpdateID != "" {
		t.Fatalf("expected repo untouched on invalid status")
	}
}

func TestUpdateStatus_PassesThrough(t *testing.T) {
	repo := &stubRepo{updated: &domain.Order{ID: "ord-1", Status: domain.OrderStatusShipped}}
	svc := New(repo)

	got, err := svc.UpdateStatus(context.Background(), "ord-1", domain.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if repo.lastUpdateID != "ord-1" || repo.lastNewStatus != domain.OrderStatusShipped {
		t.Fatalf("unexpected repo call: id=%q status=%q", repo.lastUpdateID, repo.lastNewStatus)
	}
	if got.Status != domain.OrderStatusShipped {
		t.Fatalf("expected updated order returned, got %+v", got)
	}
}

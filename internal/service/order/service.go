package order

import (
	"context"
	"errors"
	"strings"

	"manox/internal/domain"
)

var (
	ErrNoItems         = errors.New("no items")
	ErrMissingCustomer = errors.New("customer name and email required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidQty      = errors.New("item qty must be at least 1")
)

// Service accepts submitted orders and serves the back office views.
// It is the system of record: the id and createdAt it returns are the
// canonical ones.
type Service struct {
	repo orderRepo
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

// Place validates and persists a submitted order. Amounts are stored
// as submitted; a missing total is recomputed from the items plus
// shipping so older clients that only send a total keep working.
func (s *Service) Place(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if len(o.Items) == 0 {
		return nil, ErrNoItems
	}
	if strings.TrimSpace(o.Customer.Name) == "" || strings.TrimSpace(o.Customer.Email) == "" {
		return nil, ErrMissingCustomer
	}
	for _, it := range o.Items {
		if it.Qty < 1 {
			return nil, ErrInvalidQty
		}
	}
	if o.Subtotal.IsZero() {
		o.Subtotal = domain.Cart{Items: o.Items}.Subtotal()
	}
	if o.Total.IsZero() {
		o.Total = o.Subtotal.Add(o.Shipping)
	}
	o.Status = domain.OrderStatusPending
	return s.repo.Create(ctx, o)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	list, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Order{}
	}
	return list, nil
}

func (s *Service) ListPage(ctx context.Context, page, limit int) ([]domain.Order, int, error) {
	return s.repo.ListPage(ctx, page, limit)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusShipped, domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

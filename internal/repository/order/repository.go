package order

import (
	"context"

	"manox/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// ListRecent returns the newest orders first, at most limit of them.
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
	Count(ctx context.Context) (int, error)
}

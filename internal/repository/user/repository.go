package user

import (
	"context"

	"manox/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.User, int, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

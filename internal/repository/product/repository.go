package product

import (
	"context"

	"manox/internal/domain"
)

// ListFilter narrows List results; zero values mean "no filter".
type ListFilter struct {
	Category    string
	Subcategory string
	Featured    *bool
	Page        int
	Limit       int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

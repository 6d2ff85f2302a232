package catalog

import (
	"context"
	"errors"
	"strings"

	"manox/internal/domain"
	productrepo "manox/internal/repository/product"
)

// Service exposes the product catalog operations used by the public
// storefront and the admin back office.
type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

// ListInput carries the public listing filters. Limit defaults to 500
// and is capped there so a single page can hold the whole catalog.
type ListInput struct {
	Category    string
	Subcategory string
	Featured    *bool
	Page        int
	Limit       int
}

type ListResult struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	items, total, err := s.repo.List(ctx, productrepo.ListFilter{
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Featured:    in.Featured,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	return &ListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, errors.New("title required")
	}
	if p.Price.IsNegative() {
		return nil, errors.New("price must not be negative")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, errors.New("id required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, errors.New("title required")
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

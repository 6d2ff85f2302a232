package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"manox/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestJSONImporter_Run(t *testing.T) {
	catalog := `[
		{
			"title": "Bangles",
			"title_it": "Braccialetti rigidi",
			"description": "Set of traditional bangles",
			"price": 4.00,
			"category": "Jewelry",
			"category_it": "Gioielli",
			"subcategory": "Bangles",
			"stock": 25,
			"sku": "MANOX-JEW-BANGLES",
			"images": ["https://example.com/bangles.jpg"],
			"isFeatured": true
		},
		{
			"title": "Jhumka",
			"price": 2.50,
			"category": "Jewelry",
			"stock": 40
		}
	]`

	repo := &stubProductRepo{}
	imp := NewJSONImporter(strings.NewReader(catalog), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 products saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.Title != "Bangles" || first.SKU != "MANOX-JEW-BANGLES" || !first.IsFeatured {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if !first.Price.Equal(decimal.RequireFromString("4.00")) {
		t.Fatalf("expected price 4.00, got %s", first.Price)
	}
	if len(first.Images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(first.Images))
	}
}

func TestJSONImporter_StopsOnBadRecord(t *testing.T) {
	catalog := `[
		{"title": "Bangles", "price": 4.00},
		{"title": "", "price": 1.00},
		{"title": "Never Reached", "price": 2.00}
	]`

	repo := &stubProductRepo{}
	imp := NewJSONImporter(strings.NewReader(catalog), repo)

	count, err := imp.Run(context.Background())
	if err == nil {
		t.Fatalf("expected error for untitled record")
	}
	if count != 1 {
		t.Fatalf("expected 1 product imported before failure, got %d", count)
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Fatalf("expected failing record index in error, got %v", err)
	}
}

func TestJSONImporter_RejectsNegativePrice(t *testing.T) {
	catalog := `[{"title": "Bangles", "price": -1.00}]`

	imp := NewJSONImporter(strings.NewReader(catalog), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for negative price")
	}
}

package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"manox/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads a JSON catalog export and inserts its products.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{
		reader:      r,
		productRepo: repo,
	}
}

type jsonRecord struct {
	Title         string          `json:"title"`
	TitleEN       string          `json:"title_en"`
	TitleIT       string          `json:"title_it"`
	Description   string          `json:"description"`
	DescriptionEN string          `json:"description_en"`
	DescriptionIT string          `json:"description_it"`
	Images        []string        `json:"images"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	CategoryIT    string          `json:"category_it"`
	Subcategory   string          `json:"subcategory"`
	SubcategoryIT string          `json:"subcategory_it"`
	Stock         int             `json:"stock"`
	SKU           string          `json:"sku"`
	Tags          []string        `json:"tags"`
	IsFeatured    bool            `json:"isFeatured"`
}

// Run decodes the export and creates one product per record. It stops at
// the first bad record so a re-run after fixing the file stays predictable.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var records []jsonRecord
	dec := json.NewDecoder(i.reader)
	if err := dec.Decode(&records); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	imported := 0
	for n, rec := range records {
		if err := i.save(ctx, rec); err != nil {
			return imported, fmt.Errorf("record %d: %w", n, err)
		}
		imported++
	}
	return imported, nil
}

func (i *JSONImporter) save(ctx context.Context, rec jsonRecord) error {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		title = strings.TrimSpace(rec.TitleEN)
	}
	if title == "" {
		return fmt.Errorf("missing title")
	}
	if rec.Price.IsNegative() {
		return fmt.Errorf("negative price for %q", title)
	}

	p := domain.Product{
		Title:         title,
		TitleEN:       rec.TitleEN,
		TitleIT:       rec.TitleIT,
		Description:   rec.Description,
		DescriptionEN: rec.DescriptionEN,
		DescriptionIT: rec.DescriptionIT,
		Images:        rec.Images,
		Price:         rec.Price,
		Category:      rec.Category,
		CategoryIT:    rec.CategoryIT,
		Subcategory:   rec.Subcategory,
		SubcategoryIT: rec.SubcategoryIT,
		Stock:         rec.Stock,
		SKU:           strings.TrimSpace(rec.SKU),
		Tags:          rec.Tags,
		IsFeatured:    rec.IsFeatured,
	}

	if _, err := i.productRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product %q: %w", title, err)
	}
	return nil
}

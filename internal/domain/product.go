package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The *EN/*IT fields carry the bilingual
// storefront copy; Title/Description/Category hold the default
// (English) values used when a translation is missing.
type Product struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TitleEN       string          `json:"title_en,omitempty"`
	TitleIT       string          `json:"title_it,omitempty"`
	Description   string          `json:"description,omitempty"`
	DescriptionEN string          `json:"description_en,omitempty"`
	DescriptionIT string          `json:"description_it,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category,omitempty"`
	CategoryIT    string          `json:"category_it,omitempty"`
	Subcategory   string          `json:"subcategory,omitempty"`
	SubcategoryIT string          `json:"subcategory_it,omitempty"`
	Stock         int             `json:"stock"`
	SKU           string          `json:"sku,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	IsFeatured    bool            `json:"isFeatured"`
	CreatedAt     time.Time       `json:"createdAt"`
}

package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type productSeed struct {
	Title       string
	TitleIT     string
	Description string
	Price       decimal.Decimal
	Category    string
	CategoryIT  string
	Subcategory string
	SKU         string
	Stock       int
	IsFeatured  bool
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Apply inserts the demo storefront catalog. It is idempotent via the
// SKU uniqueness constraint.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Title: "Bangles", TitleIT: "Braccialetti rigidi",
			Description: "Set of traditional bangles",
			Price:       price("4.00"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Bangles",
			SKU: "MANOX-JEW-BANGLES", Stock: 25, IsFeatured: true,
		},
		{
			Title: "Jhumka", TitleIT: "Orecchini Jhumka",
			Description: "Classic bell-shaped earrings",
			Price:       price("2.50"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Earrings",
			SKU: "MANOX-JEW-JHUMKA", Stock: 40, IsFeatured: true,
		},
		{
			Title: "Rings", TitleIT: "Anelli",
			Description: "Assorted fashion rings",
			Price:       price("3.50"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Rings",
			SKU: "MANOX-JEW-RINGS", Stock: 60,
		},
		{
			Title: "Jewelry Set", TitleIT: "Parure di gioielli",
			Description: "Matching necklace and earring set",
			Price:       price("15.00"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Sets",
			SKU: "MANOX-JEW-SET", Stock: 10, IsFeatured: true,
		},
		{
			Title: "Bracelets", TitleIT: "Bracciali",
			Description: "Handmade bracelets",
			Price:       price("4.00"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Bracelets",
			SKU: "MANOX-JEW-BRACELETS", Stock: 30,
		},
		{
			Title: "Baby Bracelet", TitleIT: "Braccialetto per neonati",
			Description: "Small bracelet for babies",
			Price:       price("1.50"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Bracelets",
			SKU: "MANOX-JEW-BABY", Stock: 20,
		},
		{
			Title: "Gajray", TitleIT: "Gajray",
			Description: "Floral wrist adornment",
			Price:       price("5.00"),
			Category:    "Jewelry", CategoryIT: "Gioielli", Subcategory: "Bangles",
			SKU: "MANOX-JEW-GAJRAY", Stock: 15,
		},
		{
			Title: "Beauty Blender", TitleIT: "Spugnetta per trucco",
			Description: "Makeup blending sponge",
			Price:       price("6.00"),
			Category:    "Beauty", CategoryIT: "Bellezza", Subcategory: "Tools",
			SKU: "MANOX-BEA-BLENDER", Stock: 50,
		},
		{
			Title: "Eye Lash Curler", TitleIT: "Piegaciglia",
			Description: "Stainless steel lash curler",
			Price:       price("4.00"),
			Category:    "Beauty", CategoryIT: "Bellezza", Subcategory: "Tools",
			SKU: "MANOX-BEA-CURLER", Stock: 35,
		},
		{
			Title: "Eye Mask", TitleIT: "Maschera per occhi",
			Description: "Soothing gel eye mask",
			Price:       price("4.00"),
			Category:    "Beauty", CategoryIT: "Bellezza", Subcategory: "Skincare",
			SKU: "MANOX-BEA-MASK", Stock: 45,
		},
		{
			Title: "Bottle Keychain", TitleIT: "Portachiavi bottiglia",
			Description: "Miniature bottle keychain",
			Price:       price("1.50"),
			Category:    "Accessories", CategoryIT: "Accessori", Subcategory: "Keychains",
			SKU: "MANOX-ACC-KEYCHAIN", Stock: 80,
		},
		{
			Title: "Shiffon Abaya", TitleIT: "Abaya in chiffon",
			Description: "Lightweight chiffon abaya",
			Price:       price("4.00"),
			Category:    "Clothing", CategoryIT: "Abbigliamento", Subcategory: "Abayas",
			SKU: "MANOX-CLO-ABAYA", Stock: 12,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (title, title_en, title_it, description, description_en,
                      price, category, category_it, subcategory, stock, sku, is_featured)
VALUES ($1, $1, $2, $3, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (sku) WHERE sku <> '' DO UPDATE
SET title = EXCLUDED.title,
    title_en = EXCLUDED.title_en,
    title_it = EXCLUDED.title_it,
    description = EXCLUDED.description,
    description_en = EXCLUDED.description_en,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    category_it = EXCLUDED.category_it,
    subcategory = EXCLUDED.subcategory,
    stock = EXCLUDED.stock,
    is_featured = EXCLUDED.is_featured
`
	_, err := pool.Exec(ctx, q,
		p.Title, p.TitleIT, p.Description, p.Price,
		p.Category, p.CategoryIT, p.Subcategory,
		p.Stock, p.SKU, p.IsFeatured,
	)
	return err
}

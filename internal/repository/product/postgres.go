package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"manox/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, title, title_en, title_it, description, description_en, description_it,
images, price, category, category_it, subcategory, subcategory_it, stock, sku, tags, is_featured, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, int, error) {
	where := "TRUE"
	args := []interface{}{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Subcategory != "" {
		args = append(args, filter.Subcategory)
		where += fmt.Sprintf(" AND subcategory = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		where += fmt.Sprintf(" AND is_featured = $%d", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM products WHERE " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Printf("product repo: count error=%v", err)
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)
	listQuery := fmt.Sprintf(`
SELECT %s
FROM products
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, productColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	r.logger.Printf("product repo: list count=%d total=%d", len(result), total)
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	row := r.pool.QueryRow(ctx, q, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, title_en, title_it, description, description_en, description_it,
                      images, price, category, category_it, subcategory, subcategory_it,
                      stock, sku, tags, is_featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id::text, created_at
`
	err := r.pool.QueryRow(ctx, q,
		p.Title, p.TitleEN, p.TitleIT,
		p.Description, p.DescriptionEN, p.DescriptionIT,
		textArray(p.Images), p.Price,
		p.Category, p.CategoryIT, p.Subcategory, p.SubcategoryIT,
		p.Stock, p.SKU, textArray(p.Tags), p.IsFeatured,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s title=%q", p.ID, p.Title)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET title = $2, title_en = $3, title_it = $4,
    description = $5, description_en = $6, description_it = $7,
    images = $8, price = $9,
    category = $10, category_it = $11, subcategory = $12, subcategory_it = $13,
    stock = $14, sku = $15, tags = $16, is_featured = $17
WHERE id = $1
RETURNING created_at
`
	err := r.pool.QueryRow(ctx, q,
		p.ID,
		p.Title, p.TitleEN, p.TitleIT,
		p.Description, p.DescriptionEN, p.DescriptionIT,
		textArray(p.Images), p.Price,
		p.Category, p.CategoryIT, p.Subcategory, p.SubcategoryIT,
		p.Stock, p.SKU, textArray(p.Tags), p.IsFeatured,
	).Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Title, &p.TitleEN, &p.TitleIT,
		&p.Description, &p.DescriptionEN, &p.DescriptionIT,
		&p.Images, &p.Price,
		&p.Category, &p.CategoryIT, &p.Subcategory, &p.SubcategoryIT,
		&p.Stock, &p.SKU, &p.Tags, &p.IsFeatured, &p.CreatedAt,
	)
	return p, err
}

// textArray keeps nil slices out of the driver so empty columns stay '{}'.
func textArray(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

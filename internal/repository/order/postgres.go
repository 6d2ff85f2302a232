package order

import (
	"context"
	"errors"
	"io"
	"log"

	"manox/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// Create persists the order and its items in one transaction and
// returns the stored copy with the assigned id and timestamp.
func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}

	const insertOrder = `
INSERT INTO orders (id, customer_name, customer_email, customer_phone, customer_address,
                    subtotal, shipping, total, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at
`
	if err := tx.QueryRow(ctx, insertOrder,
		o.ID,
		o.Customer.Name, o.Customer.Email, o.Customer.Phone, o.Customer.Address,
		o.Subtotal, o.Shipping, o.Total, o.Status,
	).Scan(&o.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert error=%v", err)
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, product_id, title, price, qty, image, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	for idx, it := range o.Items {
		if _, err := tx.Exec(ctx, insertItem, o.ID, it.ProductID, it.Title, it.Price, it.Qty, it.Image, idx); err != nil {
			r.logger.Printf("order repo: insert item order_id=%s product_id=%s error=%v", o.ID, it.ProductID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s items=%d total=%s", o.ID, len(o.Items), o.Total)
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_name, customer_email, customer_phone, customer_address,
       subtotal, shipping, total, status, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address,
		&o.Subtotal, &o.Shipping, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachItems(ctx, []*domain.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.list(ctx, `
SELECT id::text, customer_name, customer_email, customer_phone, customer_address,
       subtotal, shipping, total, status, created_at
FROM orders
ORDER BY created_at DESC
LIMIT $1
`, limit)
}

func (r *postgresRepo) ListPage(ctx context.Context, page, limit int) ([]domain.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	orders, err := r.list(ctx, `
SELECT id::text, customer_name, customer_email, customer_phone, customer_address,
       subtotal, shipping, total, status, created_at
FROM orders
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address,
			&o.Subtotal, &o.Shipping, &o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *postgresRepo) attachItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*domain.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const q = `
SELECT order_id::text, product_id, title, price, qty, image
FROM order_items
WHERE order_id = ANY($1)
ORDER BY order_id, position ASC
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it domain.CartItem
		if err := rows.Scan(&orderID, &it.ProductID, &it.Title, &it.Price, &it.Qty, &it.Image); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

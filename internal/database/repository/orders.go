package repository

import (
	"context"
)

// OrderRepo handles completed checkouts.
type OrderRepo struct {
	db DBTX
}

func NewOrderRepo(db DBTX) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o Order) error {
	if _, err := r.db.ExecContext(ctx, `
	INSERT INTO orders(id, total_cents, item_count, created_at) VALUES (?, ?, ?, ?)`,
		o.ID, o.TotalCents, o.ItemCount, o.CreatedAt); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items(order_id, product_id, quantity, price_cents) VALUES (?, ?, ?, ?)`,
			o.ID, it.ProductID, it.Quantity, it.PriceCents); err != nil {
			return err
		}
	}
	return nil
}

// List returns orders newest first, without items.
func (r *OrderRepo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, total_cents, item_count, created_at FROM orders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.TotalCents, &o.ItemCount, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// DeleteAll removes every order and its items.
func (r *OrderRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_items`); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders`)
	return err
}

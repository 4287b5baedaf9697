package repository

import (
	"context"
	"fmt"
)

// CartRepo handles cart lines.
type CartRepo struct {
	db DBTX
}

func NewCartRepo(db DBTX) *CartRepo { return &CartRepo{db: db} }

// List returns lines in the order products were first added.
func (r *CartRepo) List(ctx context.Context) ([]CartLine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT product_id, quantity, added_at FROM cart_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CartLine
	for rows.Next() {
		var l CartLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Add increments the quantity of productID, creating the line if needed.
func (r *CartRepo) Add(ctx context.Context, productID string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO cart_items(product_id, quantity, added_at) VALUES (?, 1, CURRENT_TIMESTAMP)
	ON CONFLICT(product_id) DO UPDATE SET quantity = quantity + 1;
	`, productID)
	return err
}

// Remove decrements the quantity of productID and drops the line at zero.
// It reports whether a line existed.
func (r *CartRepo) Remove(ctx context.Context, productID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE cart_items SET quantity = quantity - 1 WHERE product_id = ? AND quantity > 1`, productID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	res, err = r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE product_id = ?`, productID)
	if err != nil {
		return false, fmt.Errorf("drop cart line: %w", err)
	}
	n, err = res.RowsAffected()
	return n > 0, err
}

// Clear empties the cart.
func (r *CartRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items`)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrOutOfStock is returned when an inventory change would go negative.
var ErrOutOfStock = errors.New("out of stock")

// ProductRepo handles the catalog.
type ProductRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Upsert(ctx context.Context, p Product) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO products(id, title, price_cents, inventory, initial_inventory, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 price_cents=excluded.price_cents,
	 inventory=excluded.inventory,
	 initial_inventory=excluded.initial_inventory,
	 sort_order=excluded.sort_order;
	`, p.ID, p.Title, p.PriceCents, p.Inventory, p.InitialInventory, p.SortOrder)
	return err
}

func (r *ProductRepo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, price_cents, inventory, initial_inventory, sort_order
	FROM products ORDER BY sort_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.PriceCents, &p.Inventory, &p.InitialInventory, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns nil when the product does not exist.
func (r *ProductRepo) Get(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, title, price_cents, inventory, initial_inventory, sort_order
	FROM products WHERE id = ?`, id)
	var p Product
	if err := row.Scan(&p.ID, &p.Title, &p.PriceCents, &p.Inventory, &p.InitialInventory, &p.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// AdjustInventory adds delta to a product's inventory. It returns
// ErrOutOfStock when the result would be negative.
func (r *ProductRepo) AdjustInventory(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE products SET inventory = inventory + ?
	WHERE id = ? AND inventory + ? >= 0`, delta, id, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", id, ErrOutOfStock)
	}
	return nil
}

// Restock resets every product to its initial inventory.
func (r *ProductRepo) Restock(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET inventory = initial_inventory`)
	return err
}

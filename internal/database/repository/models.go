package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by *sql.DB and *sql.Tx so repos work inside transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Product represents a catalog row.
type Product struct {
	ID               string
	Title            string
	PriceCents       int64
	Inventory        int
	InitialInventory int
	SortOrder        int
}

// CartLine represents a cart_items row.
type CartLine struct {
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// Order represents a completed checkout.
type Order struct {
	ID         string
	TotalCents int64
	ItemCount  int
	CreatedAt  time.Time
	Items      []OrderItem
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ProductID  string
	Quantity   int
	PriceCents int64
}

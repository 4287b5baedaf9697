package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/starterkit/internal/database"
	"github.com/jask/starterkit/internal/database/repository"
	"github.com/jask/starterkit/internal/store"
)

var (
	// ErrEmptyCart is returned by Checkout when there is nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutDeclined is returned when the payment step refuses the order.
	ErrCheckoutDeclined = errors.New(store.CheckoutFailedMessage)
	// ErrUnknownProduct is returned for ids missing from the catalog.
	ErrUnknownProduct = errors.New("unknown product")
)

// ShopService owns catalog inventory, the cart and checkout.
type ShopService struct {
	DB *sql.DB
	// Approve decides whether a checkout goes through. Nil flips a coin.
	Approve func() bool
}

// Snapshot is the catalog and cart after a change, shaped for the store.
type Snapshot struct {
	Products []store.Product
	Cart     store.Cart
}

// Products lists the catalog.
func (s *ShopService) Products(ctx context.Context) ([]store.Product, error) {
	rows, err := repository.NewProductRepo(s.DB).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toStoreProducts(rows), nil
}

// Snapshot reads the catalog and the cart.
func (s *ShopService) Snapshot(ctx context.Context) (Snapshot, error) {
	return snapshot(ctx, s.DB)
}

// AddToCart moves one unit of id from inventory into the cart.
func (s *ShopService) AddToCart(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		products := repository.NewProductRepo(tx)
		p, err := products.Get(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("add %s: %w", id, ErrUnknownProduct)
		}
		if err := products.AdjustInventory(ctx, id, -1); err != nil {
			return err
		}
		if err := repository.NewCartRepo(tx).Add(ctx, id); err != nil {
			return fmt.Errorf("add to cart: %w", err)
		}
		snap, err = snapshot(ctx, tx)
		return err
	})
	return snap, err
}

// RemoveFromCart returns one unit of id from the cart to inventory. Removing
// a product that is not in the cart is a no-op.
func (s *ShopService) RemoveFromCart(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		removed, err := repository.NewCartRepo(tx).Remove(ctx, id)
		if err != nil {
			return fmt.Errorf("remove from cart: %w", err)
		}
		if removed {
			if err := repository.NewProductRepo(tx).AdjustInventory(ctx, id, 1); err != nil {
				return err
			}
		}
		snap, err = snapshot(ctx, tx)
		return err
	})
	return snap, err
}

// Checkout turns the cart into an order. A declined checkout leaves the cart
// untouched and returns ErrCheckoutDeclined.
func (s *ShopService) Checkout(ctx context.Context) (repository.Order, error) {
	var order repository.Order
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		lines, err := repository.NewCartRepo(tx).List(ctx)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}
		if !s.approve() {
			return ErrCheckoutDeclined
		}
		products := repository.NewProductRepo(tx)
		order = repository.Order{ID: uuid.NewString(), CreatedAt: time.Now().UTC().Truncate(time.Second)}
		for _, l := range lines {
			p, err := products.Get(ctx, l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("checkout %s: %w", l.ProductID, ErrUnknownProduct)
			}
			order.Items = append(order.Items, repository.OrderItem{ProductID: p.ID, Quantity: l.Quantity, PriceCents: p.PriceCents})
			order.TotalCents += p.PriceCents * int64(l.Quantity)
			order.ItemCount += l.Quantity
		}
		if err := repository.NewOrderRepo(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return repository.NewCartRepo(tx).Clear(ctx)
	})
	if err != nil {
		return repository.Order{}, err
	}
	return order, nil
}

func (s *ShopService) approve() bool {
	if s.Approve != nil {
		return s.Approve()
	}
	return rand.Intn(2) == 1
}

func snapshot(ctx context.Context, db repository.DBTX) (Snapshot, error) {
	rows, err := repository.NewProductRepo(db).List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list products: %w", err)
	}
	lines, err := repository.NewCartRepo(db).List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list cart: %w", err)
	}
	cart := store.Cart{QuantityByID: make(map[string]int, len(lines))}
	for _, l := range lines {
		cart.AddedIDs = append(cart.AddedIDs, l.ProductID)
		cart.QuantityByID[l.ProductID] = l.Quantity
	}
	return Snapshot{Products: toStoreProducts(rows), Cart: cart}, nil
}

func toStoreProducts(rows []repository.Product) []store.Product {
	out := make([]store.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, store.Product{ID: p.ID, Title: p.Title, PriceCents: p.PriceCents, Inventory: p.Inventory})
	}
	return out
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/starterkit/internal/database"
	"github.com/jask/starterkit/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, database.SeedDefaults(ctx, db))
	return db
}

func TestProductsSeeded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &ShopService{DB: openTestDB(t)}
	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	require.Equal(t, "Cabot Creamery Extra Sharp Cheddar Cheese", products[0].Title)
	require.Equal(t, int64(995), products[0].PriceCents)
	require.Equal(t, 2, products[0].Inventory)
	require.Equal(t, database.ProductID(products[0].Title), products[0].ID)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, database.SeedDefaults(ctx, db))
	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n))
	require.Equal(t, 5, n)
}

func TestAddToCartStopsAtInventory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &ShopService{DB: openTestDB(t)}
	cheddar := database.ProductID("Cabot Creamery Extra Sharp Cheddar Cheese")

	_, err := svc.AddToCart(ctx, cheddar)
	require.NoError(t, err)
	snap, err := svc.AddToCart(ctx, cheddar)
	require.NoError(t, err)
	require.Equal(t, []string{cheddar}, snap.Cart.AddedIDs)
	require.Equal(t, 2, snap.Cart.QuantityByID[cheddar])
	for _, p := range snap.Products {
		if p.ID == cheddar {
			require.Zero(t, p.Inventory)
		}
	}

	_, err = svc.AddToCart(ctx, cheddar)
	require.ErrorIs(t, err, repository.ErrOutOfStock)

	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, snap.Cart.QuantityByID[cheddar])

	_, err = svc.AddToCart(ctx, "nope")
	require.ErrorIs(t, err, ErrUnknownProduct)
}

func TestRemoveFromCartRestocks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &ShopService{DB: openTestDB(t)}
	halloumi := database.ProductID("Shepherd's Halloumi Cheese")

	_, err := svc.AddToCart(ctx, halloumi)
	require.NoError(t, err)
	snap, err := svc.RemoveFromCart(ctx, halloumi)
	require.NoError(t, err)
	require.Empty(t, snap.Cart.AddedIDs)
	for _, p := range snap.Products {
		if p.ID == halloumi {
			require.Equal(t, 3, p.Inventory)
		}
	}

	snap, err = svc.RemoveFromCart(ctx, halloumi)
	require.NoError(t, err)
	for _, p := range snap.Products {
		if p.ID == halloumi {
			require.Equal(t, 3, p.Inventory)
		}
	}
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	approve := false
	svc := &ShopService{DB: db, Approve: func() bool { return approve }}

	_, err := svc.Checkout(ctx)
	require.ErrorIs(t, err, ErrEmptyCart)

	tam := database.ProductID("Cowgirl Creamery Mt. Tam Cheese")
	blue := database.ProductID("Point Reyes Bay Blue Cheese")
	for _, id := range []string{tam, blue, tam} {
		_, err := svc.AddToCart(ctx, id)
		require.NoError(t, err)
	}

	_, err = svc.Checkout(ctx)
	require.True(t, errors.Is(err, ErrCheckoutDeclined))
	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Cart.AddedIDs, 2)

	approve = true
	order, err := svc.Checkout(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, 3, order.ItemCount)
	require.Equal(t, int64(2*2999+2499), order.TotalCents)

	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Cart.AddedIDs)

	orders, err := repository.NewOrderRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	svc := &ShopService{DB: db, Approve: func() bool { return true }}
	tillamook := database.ProductID("Tillamook Medium Cheddar Cheese")
	_, err := svc.AddToCart(ctx, tillamook)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, tillamook)
	require.NoError(t, err)
	_, err = svc.Checkout(ctx)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, tillamook)
	require.NoError(t, err)

	require.NoError(t, (&MaintenanceService{DB: db}).Reset(ctx))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Cart.AddedIDs)
	for _, p := range snap.Products {
		if p.ID == tillamook {
			require.Equal(t, 5, p.Inventory)
		}
	}
	orders, err := repository.NewOrderRepo(db).List(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/starterkit/internal/database"
	"github.com/jask/starterkit/internal/database/repository"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset empties the cart, deletes orders and restocks the catalog. It keeps
// the schema intact so the app can continue running.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	return database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := repository.NewCartRepo(tx).Clear(ctx); err != nil {
			return fmt.Errorf("reset cart: %w", err)
		}
		if err := repository.NewOrderRepo(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("reset orders: %w", err)
		}
		if err := repository.NewProductRepo(tx).Restock(ctx); err != nil {
			return fmt.Errorf("restock: %w", err)
		}
		return nil
	})
}

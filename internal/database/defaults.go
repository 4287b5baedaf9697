package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/starterkit/internal/database/repository"
)

type seedProduct struct {
	title      string
	priceCents int64
	inventory  int
}

var defaultCatalog = []seedProduct{
	{"Cabot Creamery Extra Sharp Cheddar Cheese", 995, 2},
	{"Cowgirl Creamery Mt. Tam Cheese", 2999, 10},
	{"Tillamook Medium Cheddar Cheese", 899, 5},
	{"Point Reyes Bay Blue Cheese", 2499, 7},
	{"Shepherd's Halloumi Cheese", 1199, 3},
}

// ProductID derives the stable id of a catalog title.
func ProductID(title string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("product:"+title)).String()
}

// SeedDefaults ensures the starter catalog exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	products := repository.NewProductRepo(db)
	existing, err := products.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	for idx, p := range defaultCatalog {
		row := repository.Product{
			ID:               ProductID(p.title),
			Title:            p.title,
			PriceCents:       p.priceCents,
			Inventory:        p.inventory,
			InitialInventory: p.inventory,
			SortOrder:        idx,
		}
		if err := products.Upsert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

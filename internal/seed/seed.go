// Package seed fills an empty catalog with the default knitted goods.
package seed

import (
	"context"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/vbonduro/shoptime/internal/domain"
)

// itemWriter is the subset of store.ItemStore that seeding requires.
type itemWriter interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, item domain.NewItem) (*domain.Item, error)
}

// DefaultCatalog is inserted into an empty catalog on first start.
var DefaultCatalog = []domain.NewItem{
	{
		Name:        "Plaid",
		Description: domain.Str("A warm, soft plaid to relax under after a long day. Made for the home."),
		Price:       decimal.RequireFromString("90.00"),
		Category:    domain.Str("Plaids"),
		ImageURL:    domain.Str("/img/pled1.jpg"),
		Size:        domain.Str("90 x 90"),
	},
	{
		Name:        "Knitted scarf",
		Description: domain.Str("A stylish, warm handmade scarf that adds charm to any outfit."),
		Price:       decimal.RequireFromString("20.00"),
		Category:    domain.Str("Accessories"),
		ImageURL:    domain.Str("/img/scarf.jpg"),
		Size:        domain.Str("20 x 120"),
	},
	{
		Name:        "Knitted rug",
		Description: domain.Str("A soft handmade rug that brings comfort to any room."),
		Price:       decimal.RequireFromString("120.00"),
		Category:    domain.Str("Decor"),
		ImageURL:    domain.Str("/img/rug.jpg"),
		Size:        domain.Str("120 x 80"),
	},
	{
		Name:        "Soft sofa plaid",
		Description: domain.Str("A warm plaid knitted from high quality yarn. Fits a sofa or an armchair."),
		Price:       decimal.RequireFromString("150.00"),
		Category:    domain.Str("Plaids"),
		ImageURL:    domain.Str("/img/soft_pled.jpg"),
		Size:        domain.Str("200 x 160"),
	},
}

// IfEmpty inserts items when the catalog has no rows and reports how many
// items were created. A non-empty catalog is left untouched.
func IfEmpty(ctx context.Context, store itemWriter, items []domain.NewItem, logger *slog.Logger) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "count items")
	}
	if n > 0 {
		logger.Debug("catalog already populated, skipping seed", "items", n)
		return 0, nil
	}

	logger.Info("catalog is empty, seeding default items", "items", len(items))
	for i, item := range items {
		if _, err := store.Create(ctx, item); err != nil {
			return i, errors.Wrapf(err, "seed item %q", item.Name)
		}
	}
	logger.Info("catalog seeded", "items", len(items))
	return len(items), nil
}

package service

import (
	"context"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/vbonduro/shoptime/internal/domain"
	"golang.org/x/sync/errgroup"
)

// itemRepository is the subset of store.ItemStore that CatalogService requires.
type itemRepository interface {
	ListAll(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListDistinctCategories(ctx context.Context) ([]string, error)
	GetLatestInCategory(ctx context.Context, category string) (*domain.Item, error)
}

// ListingView is the full catalog listing.
type ListingView struct {
	Items []*domain.Item
}

// DetailView wraps a single item for its detail page.
type DetailView struct {
	Item *domain.Item
}

// AboutView holds the latest item of every category, in category order.
type AboutView struct {
	TopItems []*domain.Item
}

type CatalogService struct {
	items       itemRepository
	concurrency int
	logger      *slog.Logger
}

// NewCatalogService builds the service. concurrency bounds the number of
// per-category lookups in flight during GetAboutAggregate; values below one
// mean sequential lookups.
func NewCatalogService(items itemRepository, concurrency int, logger *slog.Logger) *CatalogService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &CatalogService{
		items:       items,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *CatalogService) GetListing(ctx context.Context) (*ListingView, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing")
	}
	return &ListingView{Items: items}, nil
}

// GetDetail returns (nil, nil) when no item has the given id.
func (s *CatalogService) GetDetail(ctx context.Context, id int64) (*DetailView, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "detail of item %d", id)
	}
	if item == nil {
		return nil, nil
	}
	return &DetailView{Item: item}, nil
}

// GetAboutAggregate picks the most recently created item of every category.
// A category that has no item by the time it is looked up is skipped. Any
// lookup failure aborts the whole aggregate.
func (s *CatalogService) GetAboutAggregate(ctx context.Context) (*AboutView, error) {
	categories, err := s.items.ListDistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "about: list categories")
	}

	latest := make([]*domain.Item, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, category := range categories {
		g.Go(func() error {
			item, err := s.items.GetLatestInCategory(gctx, category)
			if err != nil {
				return errors.Wrapf(err, "about: latest item in %q", category)
			}
			latest[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	top := make([]*domain.Item, 0, len(latest))
	for i, item := range latest {
		if item == nil {
			s.logger.Debug("category has no items, skipping", "category", categories[i])
			continue
		}
		top = append(top, item)
	}

	s.logger.Debug("about aggregate built", "categories", len(categories), "items", len(top))
	return &AboutView{TopItems: top}, nil
}

package store

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/vbonduro/shoptime/internal/domain"
)

// createdAtLayout is fixed-width so that ORDER BY created_at on the stored
// text is chronological.
const createdAtLayout = "2006-01-02 15:04:05.000000"

const itemColumns = `id, name, description, price, category, image_url, size, created_at`

type ItemStore struct {
	db  *sql.DB
	now func() time.Time
}

type ItemStoreOption func(*ItemStore)

// WithClock overrides the clock used to stamp created_at on new items.
func WithClock(now func() time.Time) ItemStoreOption {
	return func(s *ItemStore) { s.now = now }
}

func NewItemStore(db *sql.DB, opts ...ItemStoreOption) *ItemStore {
	s := &ItemStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item                                  domain.Item
		description, category, imageURL, size sql.NullString
	)
	if err := row.Scan(&item.ID, &item.Name, &description, &item.Price, &category, &imageURL, &size, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Description = nullable(description)
	item.Category = nullable(category)
	item.ImageURL = nullable(imageURL)
	item.Size = nullable(size)
	return &item, nil
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func (s *ItemStore) Create(ctx context.Context, item domain.NewItem) (*domain.Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, errors.Wrap(ErrInvalidItem, "name is required")
	}
	if item.Price.IsNegative() {
		return nil, errors.Wrapf(ErrInvalidItem, "price %s is negative", item.Price)
	}

	createdAt := s.now().UTC().Format(createdAtLayout)
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO items (name, description, price, category, image_url, size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, item.Name, nullString(item.Description), item.Price.StringFixed(2), nullString(item.Category),
		nullString(item.ImageURL), nullString(item.Size), createdAt)
	if err != nil {
		return nil, storageErr("create item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("create item", errors.Wrap(err, "last insert id"))
	}

	created, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, storageErr("create item", errors.Errorf("item %d missing after insert", id))
	}
	return created, nil
}

// GetByID returns (nil, nil) when no item has the given id.
func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM items WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get item", err)
	}

	return item, nil
}

func (s *ItemStore) ListAll(ctx context.Context) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items ORDER BY id ASC
	`)
	if err != nil {
		return nil, storageErr("list items", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storageErr("list items", errors.Wrap(err, "scan item"))
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list items", errors.Wrap(err, "iterate items"))
	}

	return items, nil
}

// ListDistinctCategories returns every non-empty category once, in ascending order.
func (s *ItemStore) ListDistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT category FROM items
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category ASC
	`)
	if err != nil {
		return nil, storageErr("list categories", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, storageErr("list categories", errors.Wrap(err, "scan category"))
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list categories", errors.Wrap(err, "iterate categories"))
	}

	return categories, nil
}

// GetLatestInCategory returns the item with the greatest created_at in the
// category, the highest id winning ties. It returns (nil, nil) when the
// category has no items.
func (s *ItemStore) GetLatestInCategory(ctx context.Context, category string) (*domain.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE category = ?
		ORDER BY created_at DESC, id DESC LIMIT 1
	`, category))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get latest item in category", err)
	}

	return item, nil
}

func (s *ItemStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, storageErr("count items", err)
	}
	return n, nil
}

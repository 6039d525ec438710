package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Optional text fields are nil when the row holds NULL.
type Item struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    *string
	ImageURL    *string
	Size        *string
	CreatedAt   time.Time
}

// InCategory reports whether the item belongs to a non-empty category.
func (i *Item) InCategory() bool {
	return i.Category != nil && *i.Category != ""
}

// NewItem holds the caller-supplied fields of an item that is about to be created.
// ID and CreatedAt are assigned by storage.
type NewItem struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    *string
	ImageURL    *string
	Size        *string
}

// Str returns a pointer to s, or nil for the empty string.
func Str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

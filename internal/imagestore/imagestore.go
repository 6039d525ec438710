package imagestore

import (
	"context"
	"io"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned by Get when no image exists under the given name.
var ErrNotFound = errors.New("image not found")

// ImageStore serves the display assets referenced by Item.ImageURL.
type ImageStore interface {
	Get(ctx context.Context, name string) (io.ReadCloser, string, error)
}

package store

import "github.com/go-faster/errors"

// ErrInvalidItem is returned by Create when the item violates a field constraint.
var ErrInvalidItem = errors.New("invalid item")

// StorageError reports that the underlying store was unreachable or returned
// a row that could not be decoded.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

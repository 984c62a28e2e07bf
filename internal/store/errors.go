package store

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates the document exists but cannot be decoded into the
// expected {"events": [...]} shape.
var ErrCorrupt = errors.New("storage corrupt")

// StorageError reports a filesystem failure during a store operation.
type StorageError struct {
	// Op is the filesystem step that failed ("mkdir", "stat", "read", "write").
	Op string

	// Path is the file or directory involved.
	Path string

	// Err is the underlying OS error.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsCorrupt returns true if err wraps ErrCorrupt.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}

// IsStorageError returns true if err wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

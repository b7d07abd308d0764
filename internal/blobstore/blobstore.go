package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no document exists under the key.
// Callers treat it as "empty collection", not as a failure.
var ErrNotFound = errors.New("document not found")

// Store is the document store adapter: whole-document get/put over a
// bucket of named JSON blobs. No partial reads, no streaming, no versioning.
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte, contentType string) error
}

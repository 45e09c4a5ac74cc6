package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

var ErrCorruptCollection = errors.New("collection content is not a JSON array")

// KV is the persistence boundary. Every logical collection is stored as one
// serialized JSON array under a single key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

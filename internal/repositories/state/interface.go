// Package state persists small key/value records for the client, most
// importantly the current-identity slot that survives restarts.
package state

import (
	"context"
)

// Repository is a durable key/value store with upsert semantics.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

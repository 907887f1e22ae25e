// Package metadata persists small key-value state that must survive restarts,
// such as the session token. It is the non-browser substitute for the web
// client's localStorage.
package metadata

import (
	"context"
)

// Repository is a durable key-value store. Get returns nil for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

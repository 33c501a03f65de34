// Package db defines the key-value storage contract the service runs on.
// Consumers depend on the narrow sub-interfaces, not the full facade.
package db

import (
	"context"
	"time"
)

// Store is the full database facade.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides the key-value operations the repositories build on.
// SetNX is the service's only serialization point: concurrent writers racing
// on the same key resolve by the first insert winning.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

package cache

import (
	"context"
	"time"
)

// NullCache reports a miss for every layout and artifact lookup, so each
// run recomputes from scratch. It backs --no-cache and keeps the runner
// free of nil-cache checks.
type NullCache struct{}

// NewNullCache returns the disabled cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get reports a miss for any key.
func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the data.
func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}

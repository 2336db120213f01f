// Package cache provides a small key/value cache abstraction with TTL
// expiry. Values are stored as JSON so both the Redis-backed and the
// in-memory implementation return byte-identical snapshots to every
// reader until the entry expires or is invalidated.
package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a TTL key/value store.
type Cache interface {
	// GetJSON unmarshals the cached value into dest. The bool reports
	// whether the key was present and not expired.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GetOrLoad returns the cached value for key, populating it with load on
// a miss. Concurrent misses for the same key are collapsed to a single
// load call per process; a cache read or write failure degrades to a
// direct load rather than an error.
func GetOrLoad[T any](ctx context.Context, c Cache, sf *singleflight.Group, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if ok, err := c.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}
	v, err, _ := sf.Do(key, func() (any, error) {
		fresh, err := load(ctx)
		if err != nil {
			return fresh, err
		}
		_ = c.SetJSON(ctx, key, fresh, ttl)
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss indicates the key is absent from the cache. Callers treat a miss
// as a normal condition, not a failure.
var ErrMiss = errors.New("cache: miss")

// KV is a minimal key-value cache. Set stores without expiry; SetTTL stores
// with a relative expiry after which the key reads as a miss.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetTTL(ctx context.Context, key, value string, ttl time.Duration) error
}

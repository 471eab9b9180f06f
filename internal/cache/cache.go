package cache

import (
	"context"
	"time"
)

// Cache stores embedding vectors so repeated questions skip the external
// embedding call. A miss is never an error; the chat path must work with no
// cache at all.
type Cache interface {
	GetVector(ctx context.Context, key string) (vec []float32, hit bool, err error)
	SetVector(ctx context.Context, key string, vec []float32, ttl time.Duration) error
}

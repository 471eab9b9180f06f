package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Srijit125/ai-demo/internal/cache"
)

// Cached is a read-through decorator: identical resolved questions reuse the
// cached vector instead of hitting the provider again. Cache failures are
// logged and ignored; they never fail a chat request.
type Cached struct {
	next  Provider
	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Logger
}

func NewCached(next Provider, c cache.Cache, ttl time.Duration, log *logrus.Logger) *Cached {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cached{next: next, cache: c, ttl: ttl, log: log}
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(text)

	if vec, hit, err := c.cache.GetVector(ctx, key); err != nil {
		c.log.WithError(err).Debug("embedding cache read failed")
	} else if hit {
		return vec, nil
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetVector(ctx, key, vec, c.ttl); err != nil {
		c.log.WithError(err).Debug("embedding cache write failed")
	}
	return vec, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

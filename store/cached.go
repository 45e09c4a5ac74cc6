package store

import (
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached is a read-through cache in front of another KV. Writes through this
// wrapper invalidate immediately; writes made by another process become
// visible once the TTL expires.
type Cached struct {
	next  KV
	cache *cache.Cache
}

func NewCached(next KV, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if cached, found := c.cache.Get(key); found {
		return slices.Clone(cached.([]byte)), nil
	}

	value, err := c.next.Get(ctx, key)

	if err != nil {
		return nil, err
	}

	c.cache.Set(key, slices.Clone(value), cache.DefaultExpiration)

	return value, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	c.cache.Delete(key)

	if err := c.next.Set(ctx, key, value); err != nil {
		return err
	}

	c.cache.Set(key, slices.Clone(value), cache.DefaultExpiration)

	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)

	return c.next.Delete(ctx, key)
}

func (c *Cached) Keys(ctx context.Context, prefix string) ([]string, error) {
	return c.next.Keys(ctx, prefix)
}

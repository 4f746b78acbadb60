package repositories

import (
	"context"
	"errors"

	"rocketshoes-cart/pkg/cache"
)

type redisCartStore struct {
	cache *cache.RedisCache
}

// NewRedisCartStore stores the cart blob in redis with no expiry.
func NewRedisCartStore(c *cache.RedisCache) CartStore {
	return &redisCartStore{cache: c}
}

func (r *redisCartStore) Read(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.cache.GetBytes(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrNotFound
	}
	return blob, err
}

func (r *redisCartStore) Write(ctx context.Context, key string, blob []byte) error {
	return r.cache.SetBytes(ctx, key, blob, 0)
}

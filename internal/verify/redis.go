package verify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache adapts a go-redis client to the Cache probe.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache parses a redis:// URL and returns a connected probe.
func NewRedisCache(rawURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisCache) Close() error { return r.client.Close() }

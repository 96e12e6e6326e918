package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a CacheRepository backed by a Redis instance, for
// deployments where cached break-even rates should survive restarts or be
// shared between replicas. Entries never expire: cached values are pure
// functions of their key.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(context.Background(), key, value, 0).Err()
}

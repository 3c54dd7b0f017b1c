package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared Redis instance, for deployments running
// more than one replica of the service.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed store.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "showreel:"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

// Get returns the cached value. Redis errors are treated as cache misses so
// an unavailable Redis never takes the catalog down.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	r.client.Set(ctx, r.key(key), value, ttl)
}

func (r *Redis) Delete(ctx context.Context, key string) {
	r.client.Del(ctx, r.key(key))
}

var _ Store = (*Redis)(nil)

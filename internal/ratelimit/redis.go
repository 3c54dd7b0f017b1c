package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Shared is a Limiter backed by Redis so multiple replicas respect one
// combined budget against the provider.
type Shared struct {
	client      *redis.Client
	prefix      string
	minInterval time.Duration
}

func NewShared(client *redis.Client, prefix string, minInterval time.Duration) *Shared {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &Shared{
		client:      client,
		prefix:      prefix,
		minInterval: minInterval,
	}
}

// Allow claims the interval slot for key with an atomic SET NX. Redis errors
// fail open: a broken limiter must not block catalog fetches.
func (s *Shared) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	set, err := s.client.SetNX(ctx, s.prefix+key, time.Now().UnixNano(), s.minInterval).Result()
	if err != nil {
		return true
	}
	return set
}

var _ Limiter = (*Shared)(nil)

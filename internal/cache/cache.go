package cache

import (
	"context"
	"time"
)

// Store is the optional cache collaborator for aggregated catalog payloads.
// The aggregation core never assumes a store exists; a nil Store simply means
// every request re-derives the catalog.
type Store interface {
	// Get returns the cached value for key, or false when absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Delete removes key.
	Delete(ctx context.Context, key string)
}

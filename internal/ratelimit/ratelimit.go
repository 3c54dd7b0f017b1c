package ratelimit

import (
	"sync"
	"time"
)

// Limiter throttles outbound calls per key. The catalog client keys on the
// provider host, so traversal fan-out cannot exceed one request per interval
// no matter how wide the folder tree is.
type Limiter interface {
	// Allow reports whether a call for key may proceed now.
	Allow(key string) bool
}

// Local is an in-process Limiter enforcing a minimum interval between calls
// sharing a key.
type Local struct {
	mu          sync.Mutex
	last        map[string]time.Time
	minInterval time.Duration
}

func NewLocal(minInterval time.Duration) *Local {
	return &Local{
		last:        make(map[string]time.Time),
		minInterval: minInterval,
	}
}

func (l *Local) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	lastCall, ok := l.last[key]
	if !ok || time.Since(lastCall) >= l.minInterval {
		l.last[key] = time.Now()
		return true
	}
	return false
}

// Reset forgets the last call time for key.
func (l *Local) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.last, key)
}

var _ Limiter = (*Local)(nil)

package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Store with per-entry TTLs and a background janitor.
type Memory struct {
	mu     sync.RWMutex
	items  map[string]entry
	stopCh chan struct{}
}

// NewMemory creates a Memory store and starts its cleanup goroutine.
func NewMemory() *Memory {
	m := &Memory{
		items:  make(map[string]entry),
		stopCh: make(chan struct{}),
	}
	go m.cleanup()
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// Stop terminates the cleanup goroutine.
func (m *Memory) Stop() {
	close(m.stopCh)
}

func (m *Memory) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Memory) removeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, e := range m.items {
		if now.After(e.expiresAt) {
			delete(m.items, key)
		}
	}
}

var _ Store = (*Memory)(nil)

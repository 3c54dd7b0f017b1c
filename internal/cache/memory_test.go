package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	store := NewMemory()
	defer store.Stop()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("payload"), time.Minute)

	value, ok := store.Get(ctx, "k")
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if string(value) != "payload" {
		t.Errorf("Get() = %q, want %q", value, "payload")
	}
}

func TestMemoryMiss(t *testing.T) {
	store := NewMemory()
	defer store.Stop()

	if _, ok := store.Get(context.Background(), "absent"); ok {
		t.Error("Get() ok = true for absent key, want false")
	}
}

func TestMemoryExpiry(t *testing.T) {
	store := NewMemory()
	defer store.Stop()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("Get() ok = true after TTL, want false")
	}
}

func TestMemoryDelete(t *testing.T) {
	store := NewMemory()
	defer store.Stop()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"), time.Minute)
	store.Delete(ctx, "k")

	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("Get() ok = true after Delete, want false")
	}
}

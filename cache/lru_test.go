package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func newTestLRU(t *testing.T, capacity int, onEvict EvictFunc[Key, string]) *LRU[Key, string] {
	t.Helper()
	c, err := NewLRU[Key, string](Policy{Capacity: capacity}, onEvict)
	if err != nil {
		t.Fatalf("NewLRU(%d) failed: %v", capacity, err)
	}
	return c
}

func TestNewLRU_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, AutoCapacity, -3} {
		_, err := NewLRU[Key, string](Policy{Capacity: capacity}, nil)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewLRU(%d) error = %v, want %v", capacity, err, ErrInvalidCapacity)
		}
	}
}

func TestLRU_GetSet(t *testing.T) {
	c := newTestLRU(t, 2, nil)
	ctx := context.Background()
	key := Key{Exchange: "NYSE", Year: 2024}

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Set(ctx, key, "built"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := c.Get(ctx, key)
	if !ok || got != "built" {
		t.Errorf("Get = (%q, %v), want (%q, true)", got, ok, "built")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if c.Capacity() != 2 {
		t.Errorf("Capacity() = %d, want 2", c.Capacity())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []Key
	c := newTestLRU(t, 2, func(k Key, _ string) {
		evicted = append(evicted, k)
	})
	ctx := context.Background()

	k2020 := Key{Exchange: "NYSE", Year: 2020}
	k2021 := Key{Exchange: "NYSE", Year: 2021}
	k2022 := Key{Exchange: "NYSE", Year: 2022}

	_ = c.Set(ctx, k2020, "2020")
	_ = c.Set(ctx, k2021, "2021")

	// Touch 2020 so 2021 becomes the oldest
	c.Get(ctx, k2020)

	_ = c.Set(ctx, k2022, "2022")

	if _, ok := c.Peek(k2021); ok {
		t.Error("expected 2021 to be evicted")
	}
	if _, ok := c.Peek(k2020); !ok {
		t.Error("expected 2020 to survive")
	}
	if len(evicted) != 1 || evicted[0] != k2021 {
		t.Errorf("evicted = %v, want [%v]", evicted, k2021)
	}

	keys := c.Keys()
	if len(keys) != 2 || keys[0] != k2020 || keys[1] != k2022 {
		t.Errorf("Keys() = %v, want [%v %v]", keys, k2020, k2022)
	}
}

func TestLRU_OverwriteDoesNotEvict(t *testing.T) {
	evictions := 0
	c := newTestLRU(t, 1, func(Key, string) { evictions++ })
	ctx := context.Background()
	key := Key{Exchange: "JPX", Year: 2024}

	_ = c.Set(ctx, key, "first")
	_ = c.Set(ctx, key, "second")

	if evictions != 0 {
		t.Errorf("evictions = %d, want 0", evictions)
	}
	if got, _ := c.Get(ctx, key); got != "second" {
		t.Errorf("Get = %q, want %q", got, "second")
	}
}

func TestLRU_DeleteAndPurgeDoNotCountAsEviction(t *testing.T) {
	evictions := 0
	c := newTestLRU(t, 4, func(Key, string) { evictions++ })
	ctx := context.Background()

	_ = c.Set(ctx, Key{Exchange: "B3", Year: 2020}, "a")
	_ = c.Set(ctx, Key{Exchange: "B3", Year: 2021}, "b")

	if err := c.Delete(ctx, Key{Exchange: "B3", Year: 2020}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Delete is idempotent
	if err := c.Delete(ctx, Key{Exchange: "B3", Year: 2020}); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	c.Purge()

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if evictions != 0 {
		t.Errorf("evictions = %d, want 0", evictions)
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := newTestLRU(t, 8, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Key{Exchange: "SSE", Year: 2020 + i%6}
			_ = c.Set(ctx, key, key.String())
			c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if c.Len() > 8 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func TestNop(t *testing.T) {
	var c Cache[Key, string] = Nop[Key, string]{}
	ctx := context.Background()
	key := Key{Exchange: "CME", Year: 2023}

	_ = c.Set(ctx, key, "value")
	if _, ok := c.Get(ctx, key); ok {
		t.Error("Nop cache should always miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete = %v, want nil", err)
	}
}

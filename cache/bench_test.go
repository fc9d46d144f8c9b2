package cache

import (
	"context"
	"testing"
)

func BenchmarkLRU_Get(b *testing.B) {
	c, err := NewLRU[Key, int](DefaultPolicy().Resolve(30), nil)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	key := Key{Exchange: "NYSE", Year: 2024}
	_ = c.Set(ctx, key, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(ctx, key)
	}
}

func BenchmarkLRU_SetEvict(b *testing.B) {
	c, err := NewLRU[Key, int](Policy{Capacity: 4}, nil)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set(ctx, Key{Exchange: "NYSE", Year: 2000 + i%16}, i)
	}
}

func BenchmarkLoader_Hit(b *testing.B) {
	c, err := NewLRU[Key, int](DefaultPolicy().Resolve(30), nil)
	if err != nil {
		b.Fatal(err)
	}
	l, err := NewLoader[int](c, Hooks{})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	key := Key{Exchange: "JPX", Year: 2024}
	load := func(context.Context, Key) (int, error) { return 1, nil }
	_, _ = l.Get(ctx, key, load)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(ctx, key, load)
	}
}

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestStoreGetOrLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "projection", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "board:t1:2024-03:false:guessCount", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if value != "projection" {
			t.Fatalf("unexpected value: %v", value)
		}
	}

	if loads != 1 {
		t.Fatalf("expected 1 load, got %d", loads)
	}
}

func TestStoreGetOrLoadPropagatesError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	wantErr := fmt.Errorf("repo down")
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if err == nil {
		t.Fatal("expected error")
	}

	// Failed loads are not cached.
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("error result should not be cached")
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "board:t1:2024-03", 1)
	store.Set(ctx, "board:t1:2024-04", 2)
	store.Set(ctx, "board:t2:2024-03", 3)

	store.DeletePrefix(ctx, "board:t1:")

	if _, ok := store.Get(ctx, "board:t1:2024-03"); ok {
		t.Fatal("expected board:t1:2024-03 to be evicted")
	}
	if _, ok := store.Get(ctx, "board:t2:2024-03"); !ok {
		t.Fatal("expected board:t2:2024-03 to survive")
	}
}

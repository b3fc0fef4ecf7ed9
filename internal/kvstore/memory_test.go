package kvstore

import (
	"context"
	"errors"
	"testing"

	"fastlaundry/internal/domain"
)

func TestMemoryGetMissing(t *testing.T) {
	store := NewMemory()
	_, err := store.Get(context.Background(), "cart:missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemorySetGetRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	if err := store.Set(ctx, "cart:s1", `[{"id":"p1"}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := store.Get(ctx, "cart:s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `[{"id":"p1"}]` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestMemorySetOverwrites(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	_ = store.Set(ctx, "k", "old")
	_ = store.Set(ctx, "k", "new")
	got, err := store.Get(ctx, "k")
	if err != nil || got != "new" {
		t.Fatalf("expected new, got %q err %v", got, err)
	}
}

func TestMemoryDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	_ = store.Set(ctx, "k", "v")
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := store.Delete(ctx, "k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}
}

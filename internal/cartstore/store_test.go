package cartstore

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/kvstore"
)

func newTestStore() (*Store, kvstore.Store) {
	kv := kvstore.NewMemory()
	return New(kv, log.New(io.Discard, "", 0)), kv
}

func item(productID string, price, surcharge int64, qty int, express bool) domain.LineItem {
	return domain.LineItem{
		ProductID:        productID,
		Name:             "Item " + productID,
		UnitPrice:        price,
		ExpressSurcharge: surcharge,
		Quantity:         qty,
		IsExpress:        express,
	}
}

func TestLoadMissingYieldsEmptyCart(t *testing.T) {
	store, _ := newTestStore()
	if items := store.Load(context.Background(), "s1"); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestLoadMalformedYieldsEmptyCart(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()
	_ = kv.Set(ctx, "cart:s1", "{not json")
	if items := store.Load(ctx, "s1"); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestLoadCoercesCorruptedNumerics(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()
	raw := `[{"id":"p1","name":"Shirts","express":"express","quantity":"2","basePrice":"100","expressPrice":"oops"}]`
	_ = kv.Set(ctx, "cart:s1", raw)

	items := store.Load(ctx, "s1")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Quantity != 2 || got.UnitPrice != 100 || got.ExpressSurcharge != 0 {
		t.Fatalf("unexpected coercion result: %+v", got)
	}
	if !got.IsExpress {
		t.Fatalf("expected express flag decoded from string enum")
	}
}

func TestAddValidation(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	if _, err := store.Add(ctx, "s1", item("", 100, 0, 1, false)); !errors.Is(err, ErrProductRequired) {
		t.Fatalf("expected product error, got %v", err)
	}
	if _, err := store.Add(ctx, "s1", item("p1", 100, 0, 0, false)); !errors.Is(err, ErrQuantityPositive) {
		t.Fatalf("expected quantity error, got %v", err)
	}
}

func TestAddMergesSameProductAndFlag(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	if _, err := store.Add(ctx, "s1", item("p1", 100, 20, 2, true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := store.Add(ctx, "s1", item("p1", 100, 20, 3, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddDifferentExpressFlagCreatesDistinctLine(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 20, 1, false))
	items, err := store.Add(ctx, "s1", item("p1", 100, 20, 1, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", len(items))
	}
}

func TestAddSurvivesReload(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 20, 2, true))

	items := store.Load(ctx, "s1")
	if len(items) != 1 || items[0].ProductID != "p1" || items[0].Quantity != 2 || !items[0].IsExpress {
		t.Fatalf("unexpected reloaded cart: %+v", items)
	}
}

func TestPersistedShapeUsesExpressStringEnum(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 20, 1, true))
	_, _ = store.Add(ctx, "s1", item("p2", 50, 10, 1, false))

	raw, err := kv.Get(ctx, "cart:s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(raw, `"express":"express"`) || !strings.Contains(raw, `"express":"normal"`) {
		t.Fatalf("persisted record missing express string enum: %s", raw)
	}
	if !strings.Contains(raw, `"basePrice":100`) || !strings.Contains(raw, `"expressPrice":20`) {
		t.Fatalf("persisted record missing price fields: %s", raw)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 0, 1, false))
	if _, err := store.Remove(ctx, "s1", 5); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if _, err := store.Remove(ctx, "s1", -1); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestRemoveDeletesLine(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 0, 1, false))
	_, _ = store.Add(ctx, "s1", item("p2", 50, 0, 1, false))

	items, err := store.Remove(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("unexpected cart after remove: %+v", items)
	}
}

func TestSetQuantityFlooredAtOne(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 0, 2, false))

	items, err := store.SetQuantity(ctx, "s1", "p1", false, -10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected floor at 1, got %d", items[0].Quantity)
	}
}

func TestSetQuantityUnknownLine(t *testing.T) {
	store, _ := newTestStore()
	if _, err := store.SetQuantity(context.Background(), "s1", "ghost", false, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClearThenLoadYieldsEmpty(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	_, _ = store.Add(ctx, "s1", item("p1", 100, 0, 1, false))

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items := store.Load(ctx, "s1"); len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", len(items))
	}
	// clearing an already-empty cart is not an error
	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error clearing empty cart: %v", err)
	}
}

// Package cartstore owns the session-durable cart: an ordered list of
// line items persisted as one JSON-encoded array under a fixed per-session
// key. Every mutation is a whole-record read-modify-write; two writers on
// the same session are last-writer-wins.
package cartstore

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/kvstore"
)

const keyPrefix = "cart:"

var (
	ErrProductRequired  = errors.New("productId required")
	ErrQuantityPositive = errors.New("quantity must be positive")
)

// Store reads and writes session carts through a key-value backend.
type Store struct {
	kv     kvstore.Store
	logger *log.Logger
}

func New(kv kvstore.Store, logger *log.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

func cartKey(sessionID string) string {
	return keyPrefix + sessionID
}

// Load returns the persisted cart for a session. Missing, malformed or
// unreadable state yields an empty cart, never an error: the record comes
// from untrusted storage and a broken cart must not take the session down.
func (s *Store) Load(ctx context.Context, sessionID string) []domain.LineItem {
	raw, err := s.kv.Get(ctx, cartKey(sessionID))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("load cart %s: %v", sessionID, err)
		}
		return nil
	}
	items, err := decodeCart(raw)
	if err != nil {
		s.logger.Printf("discarding malformed cart %s: %v", sessionID, err)
		return nil
	}
	return items
}

// Add merges an item into the cart. Line identity is (productID,
// isExpress): an existing line has its quantity incremented, otherwise the
// item is appended. The updated cart is persisted before returning.
func (s *Store) Add(ctx context.Context, sessionID string, item domain.LineItem) ([]domain.LineItem, error) {
	if item.ProductID == "" {
		return nil, ErrProductRequired
	}
	if item.Quantity <= 0 {
		return nil, ErrQuantityPositive
	}

	items := s.Load(ctx, sessionID)
	merged := false
	for i := range items {
		if items[i].SameLine(item.ProductID, item.IsExpress) {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.persist(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes the line at the given position. An out-of-range index is
// a contract violation, not a silent no-op.
func (s *Store) Remove(ctx context.Context, sessionID string, index int) ([]domain.LineItem, error) {
	items := s.Load(ctx, sessionID)
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("remove cart line %d of %d: %w", index, len(items), domain.ErrIndexOutOfRange)
	}
	items = append(items[:index], items[index+1:]...)
	if err := s.persist(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity adjusts a line's quantity by delta, floored at 1; removal
// goes through Remove, never through a quantity of zero.
func (s *Store) SetQuantity(ctx context.Context, sessionID, productID string, isExpress bool, delta int) ([]domain.LineItem, error) {
	items := s.Load(ctx, sessionID)
	found := false
	for i := range items {
		if items[i].SameLine(productID, isExpress) {
			items[i].Quantity += delta
			if items[i].Quantity < 1 {
				items[i].Quantity = 1
			}
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	if err := s.persist(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear removes the persisted record. Clearing an absent cart is fine;
// it is called after a booking is confirmed, by which time another tab
// may already have emptied it.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, cartKey(sessionID)); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Store) persist(ctx context.Context, sessionID string, items []domain.LineItem) error {
	raw, err := encodeCart(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, cartKey(sessionID), raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

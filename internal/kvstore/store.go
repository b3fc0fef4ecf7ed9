// Package kvstore is the persisted key-value storage the session cart
// lives in. Values are opaque strings; the cart store owns the encoding.
package kvstore

import "context"

// Store is a string key-value store scoped to the deployment. Get returns
// domain.ErrNotFound when the key is absent. Set overwrites whole values;
// there is no merge, so concurrent writers are last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Package kv provides the key-value backing injected into the entity store.
// Values are opaque byte blobs addressed by fixed string keys; a missing key
// reads as nil rather than an error, which lets callers treat "absent" and
// "empty" uniformly when deciding whether to seed.
package kv

import "context"

type Store interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the full value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Package storage provides the key-value cache backends the resolved
// settings are stored in. The host application's cache is modeled as a plain
// get/set-with-invalidation byte store.
package storage

import "context"

// Store is the cache collaborator contract.
//
// Implementations own their synchronization; callers assume at-most-one-writer
// semantics per key, matching a request-scoped or externally synchronized
// host cache.
type Store interface {
	// Get retrieves the entry stored under key.
	// Returns ErrNotFound when the key has no entry.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key, replacing any existing entry.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes the entry under key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// ErrNotFound is returned when a cache entry doesn't exist.
type ErrNotFound struct {
	Key string
}

func (e ErrNotFound) Error() string {
	return "cache entry not found: " + e.Key
}

// IsNotFound returns true if the error is ErrNotFound.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}

package storage

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultMemoryEntries bounds the in-process cache. The settings cache holds
// a handful of fixed keys, so the bound only matters for misuse.
const defaultMemoryEntries = 64

// MemoryStore is an in-process Store backed by an LRU cache.
type MemoryStore struct {
	entries *lru.Cache[string, []byte]
}

// NewMemoryStore creates an in-process store holding at most size entries.
// size <= 0 selects the default bound.
func NewMemoryStore(size int) (*MemoryStore, error) {
	if size <= 0 {
		size = defaultMemoryEntries
	}
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &MemoryStore{entries: entries}, nil
}

// Get retrieves the entry stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.entries.Get(key)
	if !ok {
		return nil, ErrNotFound{Key: key}
	}
	// Callers must not observe later writes through a previously returned slice.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores data under key, replacing any existing entry.
func (m *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	m.entries.Add(key, stored)
	return nil
}

// Delete removes the entry under key.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.entries.Remove(key)
	return nil
}

// Close releases the store. The LRU has nothing to release.
func (m *MemoryStore) Close() error {
	m.entries.Purge()
	return nil
}

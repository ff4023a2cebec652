package storage

import (
	"context"
	"sync"
)

// MockStore is an in-memory implementation of Store for testing.
type MockStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	calls   MockCalls

	// FailGet and FailSet, when non-nil, are returned from the respective
	// method to simulate backend failures.
	FailGet error
	FailSet error
}

// MockCalls tracks method invocations for test verification.
type MockCalls struct {
	Get    int
	Set    int
	Delete int
}

// NewMockStore creates a new in-memory mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		entries: make(map[string][]byte),
	}
}

// Get retrieves the entry stored under key.
func (m *MockStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Get++

	if m.FailGet != nil {
		return nil, m.FailGet
	}
	data, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound{Key: key}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores data under key.
func (m *MockStore) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Set++

	if m.FailSet != nil {
		return m.FailSet
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.entries[key] = stored
	return nil
}

// Delete removes the entry under key.
func (m *MockStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Delete++

	delete(m.entries, key)
	return nil
}

// Close is a no-op for the mock.
func (m *MockStore) Close() error { return nil }

// Calls returns a snapshot of recorded method invocations.
func (m *MockStore) Calls() MockCalls {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Len returns the number of stored entries.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

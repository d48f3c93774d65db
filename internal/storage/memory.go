package storage

import (
	"context"
	"sync"
)

// MemoryStore is a BlobStore held entirely in process memory.
type MemoryStore struct {
	blobs  map[string][]byte
	puts   map[string]int
	mu     sync.RWMutex
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
		puts:  make(map[string]int),
	}
}

// Get returns a copy of the blob stored under key.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateContext(ctx); err != nil {
		return nil, false, err
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrStoreClosed
	}
	value, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Put stores a copy of value under key.
func (m *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.blobs[key] = append([]byte(nil), value...)
	m.puts[key]++
	return nil
}

// Clear removes every stored blob.
func (m *MemoryStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.blobs = make(map[string][]byte)
	return nil
}

// Close marks the store closed; later calls fail with ErrStoreClosed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Puts reports how many times key has been written.
func (m *MemoryStore) Puts(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts[key]
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package delegate

import (
	"context"
	"sync"

	"github.com/suparena/kvaccessor/errors"
)

// Index is the minimal capability a delegate must provide: an indexed read
// and an indexed write keyed by any comparable key type, including composite
// struct keys. Generated accessors perform exactly one Index call each.
type Index[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, error)

	Set(ctx context.Context, key K, value V) error
}

// MapIndex implements Index backed by an in-memory Go map.
type MapIndex[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

var _ Index[string, any] = (*MapIndex[string, any])(nil)

// NewMapIndex creates an empty MapIndex.
func NewMapIndex[K comparable, V any]() *MapIndex[K, V] {
	return &MapIndex[K, V]{
		entries: make(map[K]V),
	}
}

// NewMapIndexFrom creates a MapIndex seeded with a copy of the given entries.
func NewMapIndexFrom[K comparable, V any](entries map[K]V) *MapIndex[K, V] {
	m := &MapIndex[K, V]{
		entries: make(map[K]V, len(entries)),
	}
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// Get returns the entry stored under key, or a KeyNotFoundError.
func (m *MapIndex[K, V]) Get(ctx context.Context, key K) (V, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, exists := m.entries[key]; exists {
		return v, nil
	}

	var zero V
	return zero, errors.NewKeyNotFoundError(key)
}

// Set stores value under key, creating or replacing the entry.
func (m *MapIndex[K, V]) Set(ctx context.Context, key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

// Delete removes the entry stored under key.
func (m *MapIndex[K, V]) Delete(ctx context.Context, key K) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists {
		return errors.NewKeyNotFoundError(key)
	}
	delete(m.entries, key)
	return nil
}

// Len returns the number of stored entries.
func (m *MapIndex[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Keys returns all stored keys in map order.
func (m *MapIndex[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Snapshot returns a copy of the stored entries.
func (m *MapIndex[K, V]) Snapshot() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

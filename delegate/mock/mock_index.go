/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the delegate.Index interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/kvaccessor/errors"
)

// Index is a mock implementation of delegate.Index[K, V] for testing
type Index[K comparable, V any] struct {
	mu       sync.RWMutex
	entries  map[K]V
	getError error
	setError error
	getCalls int
	setCalls int
}

// New creates a new mock Index
func New[K comparable, V any]() *Index[K, V] {
	return &Index[K, V]{
		entries: make(map[K]V),
	}
}

// WithGetError makes Get operations return an error
func (m *Index[K, V]) WithGetError(err error) *Index[K, V] {
	m.getError = err
	return m
}

// WithSetError makes Set operations return an error
func (m *Index[K, V]) WithSetError(err error) *Index[K, V] {
	m.setError = err
	return m
}

// Seed replaces the stored entries with a copy of the given map
func (m *Index[K, V]) Seed(entries map[K]V) *Index[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[K]V, len(entries))
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// Get retrieves the entry stored under key
func (m *Index[K, V]) Get(ctx context.Context, key K) (V, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()

	var zero V
	if m.getError != nil {
		return zero, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, exists := m.entries[key]; exists {
		return v, nil
	}
	return zero, errors.NewKeyNotFoundError(key)
}

// Set stores value under key
func (m *Index[K, V]) Set(ctx context.Context, key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setCalls++
	if m.setError != nil {
		return m.setError
	}
	m.entries[key] = value
	return nil
}

// Helper methods for testing

// GetCalls returns the number of Get invocations
func (m *Index[K, V]) GetCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getCalls
}

// SetCalls returns the number of Set invocations
func (m *Index[K, V]) SetCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.setCalls
}

// Entries returns a copy of the stored entries
func (m *Index[K, V]) Entries() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Clear removes all entries and resets call counts
func (m *Index[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[K]V)
	m.getCalls = 0
	m.setCalls = 0
}

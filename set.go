/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor

import (
	"fmt"
	"sync"
)

// Set is a thread-safe collection of named bound accessors sharing key and
// value types, for hosts that expose several delegates (for example
// "attributes" and "metadata") side by side.
type Set[K comparable, V any] struct {
	mu        sync.RWMutex
	accessors map[string]*Accessor[K, V]
}

// NewSet creates an empty Set.
func NewSet[K comparable, V any]() *Set[K, V] {
	return &Set[K, V]{
		accessors: make(map[string]*Accessor[K, V]),
	}
}

// Register stores the accessor under the given name.
func (s *Set[K, V]) Register(name string, a *Accessor[K, V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accessors[name]; exists {
		return fmt.Errorf("accessor with name %q already registered", name)
	}
	s.accessors[name] = a
	return nil
}

// Get retrieves the accessor registered under the given name.
func (s *Set[K, V]) Get(name string) (*Accessor[K, V], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, exists := s.accessors[name]
	if !exists {
		return nil, fmt.Errorf("accessor with name %q not found", name)
	}
	return a, nil
}

// Remove deletes the accessor registered under the given name.
func (s *Set[K, V]) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accessors[name]; !exists {
		return fmt.Errorf("accessor with name %q not found", name)
	}
	delete(s.accessors, name)
	return nil
}

// List returns all registered accessor names.
func (s *Set[K, V]) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.accessors))
	for name := range s.accessors {
		names = append(names, name)
	}
	return names
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/suparena/kvaccessor/errors"
)

// Spec declares the entries a generation call exposes: an ordered list of
// plain keys plus name→key aliases. A plain key is equivalent to an alias
// whose name equals the key, so plain keys must carry a string name; composite
// keys are exposed through Alias.
//
// By default a name declared twice resolves to its last declaration. Strict
// specs reject the collision at generation time instead.
type Spec[K comparable] struct {
	entries []specEntry[K]
	strict  bool
}

type specEntry[K comparable] struct {
	name  string
	key   K
	plain bool
}

// NewSpec creates a Spec seeded with the given plain keys.
func NewSpec[K comparable](keys ...K) *Spec[K] {
	s := &Spec[K]{}
	return s.Keys(keys...)
}

// Keys appends plain keys, each exposed under its own string name.
func (s *Spec[K]) Keys(keys ...K) *Spec[K] {
	for _, key := range keys {
		s.entries = append(s.entries, specEntry[K]{name: plainName(key), key: key, plain: true})
	}
	return s
}

// Alias appends a single name→key alias. The key may be of any comparable
// type, including composite struct keys.
func (s *Spec[K]) Alias(name string, key K) *Spec[K] {
	s.entries = append(s.entries, specEntry[K]{name: name, key: key})
	return s
}

// Aliases appends every alias of the given map, in sorted name order so
// resolution stays deterministic.
func (s *Spec[K]) Aliases(aliases map[string]K) *Spec[K] {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.entries = append(s.entries, specEntry[K]{name: name, key: aliases[name]})
	}
	return s
}

// Strict makes Resolve fail with a CollisionError when a name is declared
// more than once, instead of resolving to the last declaration.
func (s *Spec[K]) Strict() *Spec[K] {
	s.strict = true
	return s
}

// Len returns the number of declared entries, duplicates included.
func (s *Spec[K]) Len() int {
	return len(s.entries)
}

// Resolve builds the accessor table declared by the spec. Every name is
// validated here, at generation time, so a malformed spec never produces a
// half-generated accessor.
func (s *Spec[K]) Resolve() (Table[K], error) {
	table := make(Table[K], len(s.entries))
	for _, e := range s.entries {
		if e.name == "" {
			if e.plain {
				return nil, errors.NewValidationError("keys", fmt.Sprintf("plain key %v has no usable string name; expose it with Alias", e.key))
			}
			return nil, errors.NewValidationError("name", fmt.Sprintf("entry for key %v has an empty accessor name", e.key))
		}
		if _, exists := table[e.name]; exists && s.strict {
			return nil, errors.NewCollisionError(e.name)
		}
		table[e.name] = e.key
	}
	return table, nil
}

// plainName derives the accessor name for a plain key. Keys of string kind
// name themselves; anything else has no usable name and is caught by Resolve.
func plainName[K comparable](key K) string {
	v := reflect.ValueOf(key)
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String()
	}
	return ""
}

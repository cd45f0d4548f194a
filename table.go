/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor

import "sort"

// Table is an accessor table: a mapping from generated accessor name to the
// delegate key that accessor reads or writes. Generation calls return the
// table they produced so callers can compose, merge, or introspect it later,
// for example to decide which names to serialize.
type Table[K comparable] map[string]K

// Merge copies every entry of other into t, replacing entries that share a
// name (last write wins), and returns t for chaining.
func (t Table[K]) Merge(other Table[K]) Table[K] {
	for name, key := range other {
		t[name] = key
	}
	return t
}

// Union returns a new table holding the entries of both tables. Entries of
// other replace entries of t that share a name.
func (t Table[K]) Union(other Table[K]) Table[K] {
	return t.Clone().Merge(other)
}

// Clone returns a copy of the table.
func (t Table[K]) Clone() Table[K] {
	out := make(Table[K], len(t))
	for name, key := range t {
		out[name] = key
	}
	return out
}

// Key returns the delegate key registered under name.
func (t Table[K]) Key(name string) (K, bool) {
	key, ok := t[name]
	return key, ok
}

// Names returns the accessor names in sorted order.
func (t Table[K]) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both tables hold exactly the same entries.
func (t Table[K]) Equal(other Table[K]) bool {
	if len(t) != len(other) {
		return false
	}
	for name, key := range t {
		if otherKey, ok := other[name]; !ok || otherKey != key {
			return false
		}
	}
	return true
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor

import (
	"github.com/suparena/kvaccessor/delegate"
)

// Plan is a compiled accessor specification for a host type: the reader and
// writer tables are resolved once, then bound to any number of delegate
// instances. It is the type-level counterpart of generating directly on an
// Accessor.
type Plan[K comparable, V any] struct {
	readers Table[K]
	writers Table[K]
}

// NewPlan compiles reader and writer specs into a Plan. Either spec may be
// nil for a reader-only or writer-only plan.
func NewPlan[K comparable, V any](readers, writers *Spec[K]) (*Plan[K, V], error) {
	p := &Plan[K, V]{
		readers: make(Table[K]),
		writers: make(Table[K]),
	}
	if readers != nil {
		table, err := readers.Resolve()
		if err != nil {
			return nil, err
		}
		p.readers = table
	}
	if writers != nil {
		table, err := writers.Resolve()
		if err != nil {
			return nil, err
		}
		p.writers = table
	}
	return p, nil
}

// NewAccessorPlan compiles a single spec into a Plan exposing both a reader
// and a writer per entry.
func NewAccessorPlan[K comparable, V any](spec *Spec[K]) (*Plan[K, V], error) {
	return NewPlan[K, V](spec, spec)
}

// Bind creates an Accessor over the given delegate with the plan's tables
// already generated.
func (p *Plan[K, V]) Bind(index delegate.Index[K, V]) *Accessor[K, V] {
	return &Accessor[K, V]{
		index:   index,
		readers: p.readers.Clone(),
		writers: p.writers.Clone(),
	}
}

// ReaderTable returns a copy of the plan's reader table.
func (p *Plan[K, V]) ReaderTable() Table[K] {
	return p.readers.Clone()
}

// WriterTable returns a copy of the plan's writer table.
func (p *Plan[K, V]) WriterTable() Table[K] {
	return p.writers.Clone()
}

// Table returns the union of the plan's reader and writer tables.
func (p *Plan[K, V]) Table() Table[K] {
	return p.readers.Union(p.writers)
}

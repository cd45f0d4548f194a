/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor

import (
	"context"

	"github.com/suparena/kvaccessor/delegate"
	"github.com/suparena/kvaccessor/errors"
)

// Accessor exposes an explicit allow-list of named readers and writers over a
// single delegate. Only names listed in a generation call resolve; every other
// entry of the delegate stays unreachable through the accessor.
//
// Generation is expected to run once, at construction time. The generated
// accessors themselves are single delegate calls and inherit whatever
// thread-safety the delegate provides.
type Accessor[K comparable, V any] struct {
	index   delegate.Index[K, V]
	readers Table[K]
	writers Table[K]
}

// New creates an Accessor bound to the given delegate, with no generated
// accessors yet.
func New[K comparable, V any](index delegate.Index[K, V]) *Accessor[K, V] {
	return &Accessor[K, V]{
		index:   index,
		readers: make(Table[K]),
		writers: make(Table[K]),
	}
}

// GenerateReaders defines one reader per (name, key) pair of the spec and
// returns the table of generated names. A name generated twice rebinds to the
// later key.
func (a *Accessor[K, V]) GenerateReaders(spec *Spec[K]) (Table[K], error) {
	table, err := spec.Resolve()
	if err != nil {
		return nil, err
	}
	a.readers.Merge(table)
	return table, nil
}

// GenerateWriters mirrors GenerateReaders for writers.
func (a *Accessor[K, V]) GenerateWriters(spec *Spec[K]) (Table[K], error) {
	table, err := spec.Resolve()
	if err != nil {
		return nil, err
	}
	a.writers.Merge(table)
	return table, nil
}

// GenerateAccessors defines both a reader and a writer per (name, key) pair
// and returns the union of the two generated tables.
func (a *Accessor[K, V]) GenerateAccessors(spec *Spec[K]) (Table[K], error) {
	readers, err := a.GenerateReaders(spec)
	if err != nil {
		return nil, err
	}
	writers, err := a.GenerateWriters(spec)
	if err != nil {
		return nil, err
	}
	return readers.Union(writers), nil
}

// Get reads the delegate entry behind the named reader. An unlisted name
// fails with a NoAccessorError before the delegate is touched; a listed name
// surfaces the delegate's own error untranslated.
func (a *Accessor[K, V]) Get(ctx context.Context, name string) (V, error) {
	key, ok := a.readers[name]
	if !ok {
		var zero V
		return zero, errors.NewNoAccessorError(errors.ModeReader, name)
	}
	return a.index.Get(ctx, key)
}

// Set writes the delegate entry behind the named writer.
func (a *Accessor[K, V]) Set(ctx context.Context, name string, value V) error {
	key, ok := a.writers[name]
	if !ok {
		return errors.NewNoAccessorError(errors.ModeWriter, name)
	}
	return a.index.Set(ctx, key, value)
}

// Reader returns the named reader as a bound function.
func (a *Accessor[K, V]) Reader(name string) (func(context.Context) (V, error), error) {
	key, ok := a.readers[name]
	if !ok {
		return nil, errors.NewNoAccessorError(errors.ModeReader, name)
	}
	return func(ctx context.Context) (V, error) {
		return a.index.Get(ctx, key)
	}, nil
}

// Writer returns the named writer as a bound function.
func (a *Accessor[K, V]) Writer(name string) (func(context.Context, V) error, error) {
	key, ok := a.writers[name]
	if !ok {
		return nil, errors.NewNoAccessorError(errors.ModeWriter, name)
	}
	return func(ctx context.Context, value V) error {
		return a.index.Set(ctx, key, value)
	}, nil
}

// CanRead reports whether a reader was generated for name.
func (a *Accessor[K, V]) CanRead(name string) bool {
	_, ok := a.readers[name]
	return ok
}

// CanWrite reports whether a writer was generated for name.
func (a *Accessor[K, V]) CanWrite(name string) bool {
	_, ok := a.writers[name]
	return ok
}

// ReaderTable returns a copy of the generated reader table.
func (a *Accessor[K, V]) ReaderTable() Table[K] {
	return a.readers.Clone()
}

// WriterTable returns a copy of the generated writer table.
func (a *Accessor[K, V]) WriterTable() Table[K] {
	return a.writers.Clone()
}

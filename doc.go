/*
Package kvaccessor generates paired reader/writer accessors over a key-value
delegate, limited to an explicit allow-list of names.

Given a list of plain keys and name→key aliases, a generation call builds an
accessor table (name→key mapping) and defines one reader and/or writer per
entry, each performing a single indexed read or write against the delegate.
Keys not listed get no accessor at all; that allow-list is the point of the
library.

The library follows a design-time → build-time → runtime workflow:
  - Design-time: declare keys and aliases in a Spec, or in a YAML schema
  - Build-time: optionally run kvaccessorgen to emit typed accessor methods
  - Runtime: bind specs or compiled plans to any delegate.Index

Key Features:
  - Type-safe accessors using Go generics, composite struct keys included
  - Reader-only, writer-only, and combined generation
  - Type-level plans bindable to any number of delegate instances
  - Delegate backends: in-memory map, single DynamoDB item, test mock
  - Semantic error types for unlisted names and missing keys
  - Code generation from a declarative YAML schema

Basic Usage:

	// Bind an accessor to an in-memory delegate
	idx := delegate.NewMapIndexFrom(map[string]any{
	    "make": "Chevrolet", "model": "Camaro", "model_year": 1967,
	})
	acc := kvaccessor.New[string, any](idx)

	// Expose "make" under its own name and "model_year" as "year"
	table, err := acc.GenerateAccessors(
	    kvaccessor.NewSpec("make").Alias("year", "model_year"))

	v, _ := acc.Get(ctx, "make")      // "Chevrolet"
	_ = acc.Set(ctx, "year", 1968)    // updates "model_year"
	_, err = acc.Get(ctx, "model")    // errors.ErrNoAccessor: never listed

For more information, see the documentation at https://github.com/suparena/kvaccessor
*/
package kvaccessor

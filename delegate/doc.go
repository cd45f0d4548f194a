/*
Package delegate defines the capability interface an accessor delegate must provide.

The main interface is Index[K, V], the single indexing operation generated
accessors are built on:

	type Index[K comparable, V any] interface {
	    Get(ctx context.Context, key K) (V, error)
	    Set(ctx context.Context, key K, value V) error
	}

Implementations:
  - MapIndex: in-memory map-backed delegate, safe for concurrent use
  - ddb: delegate backed by the attributes of a single DynamoDB item
  - mock: configurable mock implementation for testing

The package uses Go generics so composite (struct) keys work without any
stringification: whatever comparable key type the delegate accepts is the key
type accessors are generated over.
*/
package delegate

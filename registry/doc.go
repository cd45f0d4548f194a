/*
Package registry manages host type registration for KVAccessor.

The registry system enables:
  - Introspecting a host type's accessor table without an instance
  - Constructing generated host wrappers by type name
  - Wiring kvaccessorgen output into the runtime library

Table Registry:
Associates Go host types with their generated accessor tables:

	registry.RegisterTable[CarRecord](kvaccessor.Table[string]{
	    "make": "make",
	    "year": "model_year",
	})

Bind Registry:
Maps host type names to bind functions producing a bound wrapper:

	registry.RegisterBinder("CarRecord", func(index any) (interface{}, error) {
	    return NewCarRecord(index.(delegate.Index[string, any]))
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions or through generated code.
*/
package registry

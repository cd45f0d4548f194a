/*
Package processor provides code generation functionality for KVAccessor.

The processor reads a declarative YAML schema and generates Go code with one
typed getter/setter pair per declared accessor name, plus registry
registrations.

Schema:

	package: models
	hosts:
	  - name: CarRecord
	    mode: accessors
	    keys: [make, model]
	    aliases:
	      year: model_year

Generated Code:
The processor generates a host type per schema entry:

	type CarRecord struct {
	    acc *kvaccessor.Accessor[string, any]
	}

	func NewCarRecord(index delegate.Index[string, any]) (*CarRecord, error) { ... }

	func (h *CarRecord) Year(ctx context.Context) (any, error)
	func (h *CarRecord) SetYear(ctx context.Context, value any) error

	func init() {
	    registry.RegisterTable[CarRecord](kvaccessor.Table[string]{
	        "make": "make", "model": "model", "year": "model_year",
	    })
	    registry.RegisterBinder("CarRecord", ...)
	}

Schema validation happens before any code is emitted, so malformed accessor
names fail the generation run instead of the later compile.
*/
package processor

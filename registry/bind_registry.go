package registry

import "fmt"

// BindFunc constructs a bound host wrapper around the given delegate. The
// delegate is passed as any because registrations from generated code span
// arbitrary key and value types; the generated constructor performs the
// assertion.
type BindFunc func(index any) (interface{}, error)

// bindRegistry holds the mapping from a host type name (like "CarRecord") to its bind function.
var bindRegistry = make(map[string]BindFunc)

// RegisterBinder registers a bind function for a given host type name.
// If a binder is already registered for the name, it panics to prevent accidental overrides.
func RegisterBinder(name string, fn BindFunc) {
	if _, exists := bindRegistry[name]; exists {
		panic(fmt.Sprintf("bind registry: host type %q already registered", name))
	}
	bindRegistry[name] = fn
}

// GetBinder returns the registered bind function for the given host type name.
// If no function is registered, it returns an error.
func GetBinder(name string) (BindFunc, error) {
	fn, ok := bindRegistry[name]
	if !ok {
		return nil, fmt.Errorf("bind registry: no host type registered for name %q", name)
	}
	return fn, nil
}

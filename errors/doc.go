/*
Package errors provides semantic error types for the KVAccessor library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNoAccessor    = errors.New("no accessor generated for name")
	    ErrKeyNotFound   = errors.New("key not found")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrNameCollision = errors.New("accessor name collision")
	)

Usage:

	// Check error type
	value, err := acc.Get(ctx, "model")
	if err != nil {
	    if errors.IsNoAccessor(err) {
	        // "model" was never listed in a generation call
	        return nil, fmt.Errorf("field %s is not exposed", "model")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNoAccessorError(errors.ModeReader, "model")
	err := errors.NewValidationError("keys", "plain keys must be strings")
	err := errors.NewCollisionError("year")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNoAccessor is returned when no accessor was generated for a name
	ErrNoAccessor = errors.New("no accessor generated for name")

	// ErrKeyNotFound is returned when a delegate has no entry for a key
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidInput is returned when generation-time validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNameCollision is returned when a strict spec defines a name twice
	ErrNameCollision = errors.New("accessor name collision")
)

// Mode identifies which kind of accessor a lookup asked for.
type Mode string

const (
	ModeReader Mode = "reader"
	ModeWriter Mode = "writer"
)

// NoAccessorError represents a lookup for a name no generation call listed
type NoAccessorError struct {
	Mode Mode
	Name string
}

func (e *NoAccessorError) Error() string {
	return fmt.Sprintf("no %s named %q generated", e.Mode, e.Name)
}

func (e *NoAccessorError) Is(target error) bool {
	return target == ErrNoAccessor
}

// KeyNotFoundError represents a delegate lookup that found no entry
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found in delegate", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// ValidationError represents a generation-time validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// CollisionError represents a duplicate accessor name in a strict spec
type CollisionError struct {
	Name string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("accessor name %q defined more than once", e.Name)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// Helper functions for creating errors

// NewNoAccessorError creates a new NoAccessorError
func NewNoAccessorError(mode Mode, name string) error {
	return &NoAccessorError{Mode: mode, Name: name}
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key any) error {
	return &KeyNotFoundError{Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCollisionError creates a new CollisionError
func NewCollisionError(name string) error {
	return &CollisionError{Name: name}
}

// IsNoAccessor checks if an error is a no accessor error
func IsNoAccessor(err error) bool {
	return errors.Is(err, ErrNoAccessor)
}

// IsKeyNotFound checks if an error is a key not found error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNameCollision checks if an error is a name collision error
func IsNameCollision(err error) bool {
	return errors.Is(err, ErrNameCollision)
}

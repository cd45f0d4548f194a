/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/suparena/kvaccessor/errors"
)

// Mode selects which accessors a host generates.
const (
	ModeReaders   = "readers"
	ModeWriters   = "writers"
	ModeAccessors = "accessors"
)

// Schema is the declarative accessor description kvaccessorgen consumes.
type Schema struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Hosts lists the host types to generate.
	Hosts []Host `yaml:"hosts"`
}

// Host declares one generated host type: an allow-list of plain keys and
// name→key aliases over a string-keyed delegate.
type Host struct {
	// Name is the exported Go type name of the generated host.
	Name string `yaml:"name"`
	// Mode is readers, writers, or accessors. Empty means accessors.
	Mode string `yaml:"mode"`
	// Keys lists plain keys, each exposed under its own name.
	Keys []string `yaml:"keys"`
	// Aliases maps accessor names to the delegate keys they address.
	Aliases map[string]string `yaml:"aliases"`
}

var (
	packagePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	typePattern    = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
	namePattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validate checks the schema for problems a generated file would only reveal
// at compile time: malformed identifiers, unknown modes, and accessor names
// that collapse onto the same Go method name.
func (s *Schema) Validate() error {
	if !packagePattern.MatchString(s.Package) {
		return errors.NewValidationError("package", fmt.Sprintf("%q is not a valid package name", s.Package))
	}
	if len(s.Hosts) == 0 {
		return errors.NewValidationError("hosts", "schema declares no host types")
	}

	seenHosts := make(map[string]bool, len(s.Hosts))
	for _, h := range s.Hosts {
		if !typePattern.MatchString(h.Name) {
			return errors.NewValidationError("name", fmt.Sprintf("%q is not an exported Go type name", h.Name))
		}
		if seenHosts[h.Name] {
			return errors.NewCollisionError(h.Name)
		}
		seenHosts[h.Name] = true

		switch h.Mode {
		case "", ModeReaders, ModeWriters, ModeAccessors:
		default:
			return errors.NewValidationError("mode", fmt.Sprintf("unknown mode %q for host %s", h.Mode, h.Name))
		}

		if err := h.validateNames(); err != nil {
			return err
		}
	}
	return nil
}

func (h Host) validateNames() error {
	methods := make(map[string]string)

	check := func(name string) error {
		if !namePattern.MatchString(name) {
			return errors.NewValidationError("name", fmt.Sprintf("accessor name %q of host %s is not identifier-shaped", name, h.Name))
		}
		method := exportName(name)
		if !typePattern.MatchString(method) {
			return errors.NewValidationError("name", fmt.Sprintf("accessor name %q of host %s does not produce an exported method name", name, h.Name))
		}
		if prev, exists := methods[method]; exists {
			return errors.NewValidationError("name", fmt.Sprintf("accessor names %q and %q of host %s both generate method %s", prev, name, h.Name, method))
		}
		methods[method] = name
		return nil
	}

	for _, key := range h.Keys {
		if err := check(key); err != nil {
			return err
		}
	}
	for name := range h.Aliases {
		if err := check(name); err != nil {
			return err
		}
	}
	return nil
}

// mode returns the effective generation mode.
func (h Host) mode() string {
	if h.Mode == "" {
		return ModeAccessors
	}
	return h.Mode
}

// exportName turns an accessor name like "model_year" into the exported Go
// method name "ModelYear".
func exportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

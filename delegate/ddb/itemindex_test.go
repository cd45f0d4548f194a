/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/suparena/kvaccessor/errors"
)

func TestBuildSetExpression(t *testing.T) {
	expr, names, placeholder := buildSetExpression("model_year")

	if expr != "SET #a0 = :v0" {
		t.Errorf("Unexpected expression: %q", expr)
	}
	if names["#a0"] != "model_year" {
		t.Errorf("Unexpected attribute names: %v", names)
	}
	if placeholder != ":v0" {
		t.Errorf("Unexpected placeholder: %q", placeholder)
	}
}

func TestBuildAttributeExpression(t *testing.T) {
	// "status" is a DynamoDB reserved word; the placeholder keeps it usable.
	projection, names := buildAttributeExpression("status")

	if projection != "#a0" {
		t.Errorf("Unexpected projection: %q", projection)
	}
	if names["#a0"] != "status" {
		t.Errorf("Unexpected attribute names: %v", names)
	}
}

func TestValidateAttribute(t *testing.T) {
	if err := validateAttribute("model_year"); err != nil {
		t.Errorf("Expected plain attribute to validate, got: %v", err)
	}

	if err := validateAttribute(""); !errors.IsValidationError(err) {
		t.Errorf("Expected validation error for empty name, got: %v", err)
	}

	for _, attr := range []string{"PK", "SK"} {
		if err := validateAttribute(attr); !errors.IsValidationError(err) {
			t.Errorf("Expected validation error for key attribute %q, got: %v", attr, err)
		}
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/suparena/kvaccessor/delegate/mock"
	"github.com/suparena/kvaccessor/errors"
)

func TestMockIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		idx := mock.New[string, any]().
			Seed(map[string]any{"make": "Chevrolet"})

		v, err := idx.Get(ctx, "make")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if v != "Chevrolet" {
			t.Fatalf("Expected Chevrolet, got %v", v)
		}

		if err := idx.Set(ctx, "model", "Camaro"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if idx.Entries()["model"] != "Camaro" {
			t.Fatal("Set did not store entry")
		}

		_, err = idx.Get(ctx, "model_year")
		if !errors.IsKeyNotFound(err) {
			t.Fatalf("Expected key not found error, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		getErr := errors.NewValidationError("key", "bad key")
		idx := mock.New[string, int]().WithGetError(getErr)

		if _, err := idx.Get(ctx, "anything"); err != getErr {
			t.Fatalf("Expected injected get error, got: %v", err)
		}

		setErr := errors.NewValidationError("value", "bad value")
		idx.WithSetError(setErr)
		if err := idx.Set(ctx, "anything", 1); err != setErr {
			t.Fatalf("Expected injected set error, got: %v", err)
		}
	})

	t.Run("CallCounting", func(t *testing.T) {
		idx := mock.New[string, int]()

		_ = idx.Set(ctx, "a", 1)
		_, _ = idx.Get(ctx, "a")
		_, _ = idx.Get(ctx, "b")

		if idx.GetCalls() != 2 {
			t.Errorf("Expected 2 get calls, got %d", idx.GetCalls())
		}
		if idx.SetCalls() != 1 {
			t.Errorf("Expected 1 set call, got %d", idx.SetCalls())
		}

		idx.Clear()
		if idx.GetCalls() != 0 || idx.SetCalls() != 0 {
			t.Error("Clear should reset call counts")
		}
	})
}

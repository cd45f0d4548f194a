//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kvaccessor_test

import (
	"context"
	"os"
	"testing"

	"github.com/suparena/kvaccessor"
	"github.com/suparena/kvaccessor/delegate"
	"github.com/suparena/kvaccessor/delegate/ddb"
	"github.com/suparena/kvaccessor/delegate/testmodels"
	"github.com/suparena/kvaccessor/errors"
)

func itemIndexFromEnv(t *testing.T, pk string) delegate.Index[string, any] {
	t.Helper()

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	awsDDBTableName := os.Getenv("AWS_DDB_TABLE")
	region := os.Getenv("AWS_REGION")

	if awsAccessKey == "" || awsSecretKey == "" || awsDDBTableName == "" || region == "" {
		t.Skip("AWS environment not configured")
	}

	idx, err := ddb.NewItemIndex(awsAccessKey, awsSecretKey, region, awsDDBTableName, pk, pk)
	if err != nil {
		t.Fatalf("failed to create item index: %v", err)
	}
	return idx
}

// End-to-end: a type-level plan for the Car model, bound to a DynamoDB item.
func TestCarPlanAgainstDynamoDB(t *testing.T) {
	ctx := context.Background()

	ps := kvaccessor.NewPlanStore()
	plan, err := kvaccessor.NewAccessorPlan[string, any](
		kvaccessor.NewSpec("make", "model").Alias("year", "model_year"))
	if err != nil {
		t.Fatalf("NewAccessorPlan failed: %v", err)
	}
	if err := kvaccessor.RegisterPlan[testmodels.Car](ps, plan); err != nil {
		t.Fatalf("RegisterPlan failed: %v", err)
	}

	idx := itemIndexFromEnv(t, "CAR#INTEGRATION")
	acc, err := kvaccessor.BindFor[testmodels.Car](ps, idx)
	if err != nil {
		t.Fatalf("BindFor failed: %v", err)
	}

	if err := acc.Set(ctx, "make", "Chevrolet"); err != nil {
		t.Fatalf("Set(make) failed: %v", err)
	}
	if err := acc.Set(ctx, "year", 1967); err != nil {
		t.Fatalf("Set(year) failed: %v", err)
	}

	v, err := acc.Get(ctx, "make")
	if err != nil {
		t.Fatalf("Get(make) failed: %v", err)
	}
	if v != "Chevrolet" {
		t.Errorf("Expected Chevrolet, got %v", v)
	}

	// A fresh binding over the same item sees the write.
	fresh, err := kvaccessor.BindFor[testmodels.Car](ps, itemIndexFromEnv(t, "CAR#INTEGRATION"))
	if err != nil {
		t.Fatalf("BindFor failed: %v", err)
	}
	v, err = fresh.Get(ctx, "year")
	if err != nil {
		t.Fatalf("Get(year) failed: %v", err)
	}
	t.Logf("year = %v", v)

	// The allow-list holds against the live backend too.
	if _, err := acc.Get(ctx, "vin"); !errors.IsNoAccessor(err) {
		t.Errorf("Expected no accessor error, got: %v", err)
	}
}

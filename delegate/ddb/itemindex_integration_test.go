//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/suparena/kvaccessor"
	"github.com/suparena/kvaccessor/delegate/testmodels"
	"github.com/suparena/kvaccessor/errors"
)

func getItemIndex(t *testing.T, pk, sk string) *ItemIndex {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	awsDDBTableName := os.Getenv("AWS_DDB_TABLE")
	region := os.Getenv("AWS_REGION")

	if awsAccessKey == "" || awsSecretKey == "" || awsDDBTableName == "" || region == "" {
		t.Skip("AWS environment not configured")
	}

	idx, err := NewItemIndex(awsAccessKey, awsSecretKey, region, awsDDBTableName, pk, sk)
	if err != nil {
		t.Fatalf("failed to create item index: %v", err)
	}
	return idx
}

func TestItemIndexRoundTrip(t *testing.T) {
	ctx := context.Background()
	idx := getItemIndex(t, "CAR#TEST", "CAR#TEST")

	if err := idx.Set(ctx, "make", "Chevrolet"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := idx.Set(ctx, "model_year", 1967); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err := idx.Get(ctx, "make")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "Chevrolet" {
		t.Errorf("Expected Chevrolet, got %v", v)
	}

	attrs, err := idx.Attributes(ctx)
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	t.Logf("Item attributes: %v", attrs)

	if _, err := idx.Get(ctx, "no_such_attribute"); !errors.IsKeyNotFound(err) {
		t.Errorf("Expected key not found error, got: %v", err)
	}
}

func TestItemIndexAccessorGeneration(t *testing.T) {
	ctx := context.Background()
	idx := getItemIndex(t, "CAR#TEST", "CAR#TEST")

	acc := kvaccessor.New[string, any](idx)
	_, err := acc.GenerateAccessors(
		kvaccessor.NewSpec("make").Alias("year", "model_year"))
	if err != nil {
		t.Fatalf("GenerateAccessors failed: %v", err)
	}

	if err := acc.Set(ctx, "year", 1968); err != nil {
		t.Fatalf("Set(year) failed: %v", err)
	}
	v, err := acc.Get(ctx, "year")
	if err != nil {
		t.Fatalf("Get(year) failed: %v", err)
	}
	t.Logf("year = %v", v)

	if _, err := acc.Get(ctx, "model"); !errors.IsNoAccessor(err) {
		t.Errorf("Expected no accessor error for unlisted attribute, got: %v", err)
	}
}

func TestItemIndexCarModel(t *testing.T) {
	ctx := context.Background()
	idx := getItemIndex(t, "CAR#MODEL", "CAR#MODEL")

	ct := strfmt.DateTime(time.Now())
	car := testmodels.Car{
		Make:      aws.String("Chevrolet"),
		Model:     aws.String("Camaro"),
		ModelYear: aws.Int64(1967),
		TrimLevel: "SS",
		CreatedAt: &ct,
		UpdatedAt: &ct,
	}

	// Write the model field by field through the delegate.
	av, err := attributevalue.MarshalMap(car)
	if err != nil {
		t.Fatalf("failed to marshal car: %v", err)
	}
	for name, value := range av {
		var v any
		if err := attributevalue.Unmarshal(value, &v); err != nil {
			t.Fatalf("failed to unmarshal attribute %q: %v", name, err)
		}
		if err := idx.Set(ctx, name, v); err != nil {
			t.Fatalf("Set(%q) failed: %v", name, err)
		}
	}

	v, err := idx.Get(ctx, "Make")
	if err != nil {
		t.Fatalf("Get(Make) failed: %v", err)
	}
	if v != "Chevrolet" {
		t.Errorf("Expected Chevrolet, got %v", v)
	}
}

func TestItemIndexTimestampAttributes(t *testing.T) {
	ctx := context.Background()
	idx := getItemIndex(t, "CAR#TEST", "CAR#TEST")

	acc := kvaccessor.New[string, any](idx)
	_, err := acc.GenerateAccessors(kvaccessor.NewSpec("updated_at"))
	if err != nil {
		t.Fatalf("GenerateAccessors failed: %v", err)
	}

	// Timestamps round-trip as strings through attributevalue.
	updated := strfmt.DateTime(time.Now()).String()
	if err := acc.Set(ctx, "updated_at", updated); err != nil {
		t.Fatalf("Set(updated_at) failed: %v", err)
	}

	v, err := acc.Get(ctx, "updated_at")
	if err != nil {
		t.Fatalf("Get(updated_at) failed: %v", err)
	}
	if v != updated {
		t.Errorf("Expected %q, got %v", updated, v)
	}
}

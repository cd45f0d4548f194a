/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/kvaccessor/delegate"
	"github.com/suparena/kvaccessor/errors"
)

// ItemIndex implements delegate.Index[string, any] over the attributes of a
// single DynamoDB item: the item is pinned by PK and SK at construction, and
// each accessor call reads or writes exactly one attribute of it.
type ItemIndex struct {
	client    *sdk.Client
	tableName string
	key       map[string]types.AttributeValue
}

var _ delegate.Index[string, any] = (*ItemIndex)(nil)

// keyAttributes are the item identity attributes; exposing them through
// accessors would let a writer re-identify the item, so they are rejected.
var keyAttributes = map[string]bool{"PK": true, "SK": true}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewItemIndex constructs an ItemIndex pinned to the item identified by pk
// and sk in the given table.
func NewItemIndex(awsAccessKey, awsSecretKey, awsRegion, tableName, pk, sk string) (*ItemIndex, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewItemIndexWithClient(client, tableName, pk, sk), nil
}

// NewItemIndexWithClient constructs an ItemIndex using an existing client.
func NewItemIndexWithClient(client *sdk.Client, tableName, pk, sk string) *ItemIndex {
	return &ItemIndex{
		client:    client,
		tableName: tableName,
		key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	}
}

// Get reads one attribute of the pinned item. A missing item or missing
// attribute both surface as a KeyNotFoundError.
func (d *ItemIndex) Get(ctx context.Context, attr string) (any, error) {
	if err := validateAttribute(attr); err != nil {
		return nil, err
	}

	projection, names := buildAttributeExpression(attr)
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:                &d.tableName,
		Key:                      d.key,
		ProjectionExpression:     &projection,
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}

	av, ok := out.Item[attr]
	if out.Item == nil || !ok {
		return nil, errors.NewKeyNotFoundError(attr)
	}

	var value any
	if err := attributevalue.Unmarshal(av, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attribute %q: %w", attr, err)
	}
	return value, nil
}

// Set writes one attribute of the pinned item with an UpdateItem SET
// expression, creating the item if it does not exist yet.
func (d *ItemIndex) Set(ctx context.Context, attr string, value any) error {
	if err := validateAttribute(attr); err != nil {
		return err
	}

	av, err := attributevalue.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for attribute %q: %w", attr, err)
	}

	expr, names, placeholder := buildSetExpression(attr)
	_, err = d.client.UpdateItem(ctx, &sdk.UpdateItemInput{
		TableName:                 &d.tableName,
		Key:                       d.key,
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: map[string]types.AttributeValue{placeholder: av},
	})
	if err != nil {
		return fmt.Errorf("UpdateItem failed: %w", err)
	}
	return nil
}

// Attributes returns the non-key attribute names of the pinned item, sorted.
func (d *ItemIndex) Attributes(ctx context.Context) ([]string, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       d.key,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewKeyNotFoundError(d.key)
	}

	attrs := make([]string, 0, len(out.Item))
	for name := range out.Item {
		if keyAttributes[name] {
			continue
		}
		attrs = append(attrs, name)
	}
	sort.Strings(attrs)
	return attrs, nil
}

func validateAttribute(attr string) error {
	if attr == "" {
		return errors.NewValidationError("attribute", "attribute name must not be empty")
	}
	if keyAttributes[attr] {
		return errors.NewValidationError("attribute", fmt.Sprintf("attribute %q identifies the item and cannot be accessed", attr))
	}
	return nil
}

// buildAttributeExpression builds a projection expression with a name
// placeholder, so reserved words like "status" stay usable as attributes.
func buildAttributeExpression(attr string) (string, map[string]string) {
	return "#a0", map[string]string{"#a0": attr}
}

// buildSetExpression builds an update expression assigning one placeholder
// value to one placeholder name.
func buildSetExpression(attr string) (string, map[string]string, string) {
	return "SET #a0 = :v0", map[string]string{"#a0": attr}, ":v0"
}

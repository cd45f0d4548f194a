/*
Package ddb provides a DynamoDB-backed implementation of the delegate.Index interface.

An ItemIndex treats the attributes of a single DynamoDB item as the key-value
container accessors are generated over: the item is pinned by PK and SK at
construction, Get reads one attribute with a projection, and Set writes one
attribute with an UpdateItem SET expression.

Key Features:
  - Attribute names are always passed through expression name placeholders,
    so DynamoDB reserved words remain usable as accessor keys
  - The PK and SK identity attributes are rejected at access time, keeping
    generated writers from re-identifying the item
  - Values round-trip through attributevalue marshaling, so numbers, strings,
    bools, lists, and maps all work as accessor values

Usage:

	idx, err := ddb.NewItemIndex(accessKey, secretKey, region, table, "CAR#1967", "CAR#1967")
	if err != nil { ... }

	acc := kvaccessor.New[string, any](idx)
	_, err = acc.GenerateAccessors(kvaccessor.NewSpec("make").Alias("year", "model_year"))

For usage examples, see the integration tests.
*/
package ddb

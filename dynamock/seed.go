package dynamock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/nisimpson/dynaquery"
)

// DecodeSeed parses a JSON array of objects into DynamoDB items. The JSON
// values convert through attributevalue, so numbers become N attributes and
// nested objects become M attributes.
func DecodeSeed(r io.Reader) ([]dynaquery.Item, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	items := make([]dynaquery.Item, 0, len(records))
	for i, record := range records {
		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal seed record %d: %w", i, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Seed writes the JSON-encoded records from r into the named table. It is
// intended for populating DynamoDB Local fixtures before integration tests.
func (l *LocalDynamoDB) Seed(ctx context.Context, tableName string, r io.Reader) error {
	items, err := DecodeSeed(r)
	if err != nil {
		return err
	}

	for i, item := range items {
		_, err := l.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(tableName),
			Item:      item,
		})
		if err != nil {
			return fmt.Errorf("failed to seed record %d: %w", i, err)
		}
	}

	return nil
}

// SeedFile seeds the named table from a JSON fixture file.
func (l *LocalDynamoDB) SeedFile(ctx context.Context, tableName string, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return l.Seed(ctx, tableName, f)
}

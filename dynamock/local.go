package dynamock

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nisimpson/dynaquery"
)

// LocalDynamoDB represents a connection to a local DynamoDB instance.
type LocalDynamoDB struct {
	Client   *dynamodb.Client
	Endpoint string
	Port     int
}

// NewLocalClient creates a DynamoDB client configured to connect to a local
// DynamoDB instance. This is useful for integration testing with DynamoDB
// Local.
//
// Example usage:
//
//	client := dynamock.NewLocalClient(8000)
//	// Use client with your tests
func NewLocalClient(port int) *dynamodb.Client {
	endpoint := fmt.Sprintf("http://localhost:%d", port)

	cfg := aws.Config{
		Region:      "us-east-1", // DynamoDB Local doesn't care about region
		Credentials: aws.AnonymousCredentials{},
		EndpointResolverWithOptions: aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:           endpoint,
					SigningRegion: region,
				}, nil
			},
		),
	}

	return dynamodb.NewFromConfig(cfg)
}

// NewLocalDynamoDB creates a LocalDynamoDB instance with the specified port.
// This provides additional utilities beyond just the client.
func NewLocalDynamoDB(port int) *LocalDynamoDB {
	endpoint := fmt.Sprintf("http://localhost:%d", port)
	client := NewLocalClient(port)

	return &LocalDynamoDB{
		Client:   client,
		Endpoint: endpoint,
		Port:     port,
	}
}

// IsAvailable checks if DynamoDB Local is running on the configured port.
func (l *LocalDynamoDB) IsAvailable(ctx context.Context) bool {
	// Try to connect to the port
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", l.Port), 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()

	// Try to list tables to verify it's actually DynamoDB
	_, err = l.Client.ListTables(ctx, &dynamodb.ListTablesInput{})
	return err == nil
}

// WaitForAvailable waits for DynamoDB Local to become available.
// Returns an error if it doesn't become available within the timeout.
func (l *LocalDynamoDB) WaitForAvailable(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if l.IsAvailable(ctx) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
			// Continue checking
		}
	}

	return fmt.Errorf("DynamoDB Local not available at %s after %v", l.Endpoint, timeout)
}

// CreateTable creates the table described by the dynaquery table definition,
// including any secondary indexes passed alongside it. This is a convenience
// function for integration tests.
func (l *LocalDynamoDB) CreateTable(ctx context.Context, table *dynaquery.Table, indexes ...*dynaquery.Index) error {
	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(table.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema:   keySchema(table.KeyFields()),
	}

	attributes := map[string]types.ScalarAttributeType{}
	for _, field := range table.KeyFields() {
		attributes[field.Name] = field.Type
	}

	for _, index := range indexes {
		for _, field := range index.KeyFields() {
			attributes[field.Name] = field.Type
		}

		projection := &types.Projection{
			ProjectionType: types.ProjectionType(index.Projection),
		}

		switch index.Kind {
		case dynaquery.IndexKindGlobal:
			input.GlobalSecondaryIndexes = append(input.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
				IndexName:  aws.String(index.Name),
				KeySchema:  keySchema(index.KeyFields()),
				Projection: projection,
			})
		case dynaquery.IndexKindLocal:
			input.LocalSecondaryIndexes = append(input.LocalSecondaryIndexes, types.LocalSecondaryIndex{
				IndexName:  aws.String(index.Name),
				KeySchema:  keySchema(index.KeyFields()),
				Projection: projection,
			})
		}
	}

	for name, attrType := range attributes {
		input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: attrType,
		})
	}

	if _, err := l.Client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}

	return nil
}

// DeleteTable removes the table. Errors from missing tables are returned
// unchanged.
func (l *LocalDynamoDB) DeleteTable(ctx context.Context, table *dynaquery.Table) error {
	_, err := l.Client.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(table.Name),
	})
	return err
}

func keySchema(fields []dynaquery.KeyField) []types.KeySchemaElement {
	schema := []types.KeySchemaElement{{
		AttributeName: aws.String(fields[0].Name),
		KeyType:       types.KeyTypeHash,
	}}
	if len(fields) > 1 {
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(fields[1].Name),
			KeyType:       types.KeyTypeRange,
		})
	}
	return schema
}

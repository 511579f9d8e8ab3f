// Package dynaquery provides a query-building and pagination layer
// over the AWS SDK for Go v2 DynamoDB Query and Scan operations.
package dynaquery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// Item is an alias for the dynamodb attribute value map.
type Item = map[string]types.AttributeValue

// DynamoDBClient captures the read operations required by dynaquery.
type DynamoDBClient interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Session binds a DynamoDB client to table naming and logging configuration.
// Operations resolve table names through their session on every execution,
// so changes to Prefix apply to traversals started afterward.
type Session struct {
	Client DynamoDBClient
	Prefix string         // optional prefix applied to resolved table names
	Logger zerolog.Logger // defaults to a no-op logger
}

// NewSession creates a Session backed by a DynamoDB client built from the
// ambient AWS configuration.
func NewSession(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*Session, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewSessionFromClient(dynamodb.NewFromConfig(cfg)), nil
}

// NewSessionFromClient creates a Session around an existing client. Any value
// implementing DynamoDBClient works, including mocks.
func NewSessionFromClient(client DynamoDBClient) *Session {
	return &Session{
		Client: client,
		Logger: zerolog.Nop(),
	}
}

// ResolvedName returns the table name with the session prefix applied.
func (s *Session) ResolvedName(table string) string {
	if s.Prefix == "" {
		return table
	}
	return s.Prefix + "-" + table
}

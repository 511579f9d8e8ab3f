// Package dynamock provides test doubles and integration helpers for
// dynaquery.
//
// # Mock Client
//
// MockClient is an expectation-based mock; set only the operations a test
// expects and any other call fails the test:
//
//	client := dynamock.NewMockClient(t)
//	client.QueryFunc = func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
//	    return &dynamodb.QueryOutput{}, nil
//	}
//
// # Page Server
//
// PageServer serves a scripted sequence of pages and records every request,
// which makes pagination behavior easy to assert:
//
//	server := dynamock.NewPageServer(
//	    dynamock.Page{Items: pageOne, LastEvaluatedKey: key, ScannedCount: 2},
//	    dynamock.Page{Items: pageTwo, ScannedCount: 1},
//	)
//	session := dynaquery.NewSessionFromClient(server)
//
// # DynamoDB Local
//
// LocalDynamoDB connects to a DynamoDB Local instance for integration
// testing, creates tables from dynaquery table definitions, and seeds
// fixtures from JSON:
//
//	local := dynamock.NewLocalDynamoDB(8000)
//	if !local.IsAvailable(ctx) {
//	    t.Skip("DynamoDB Local is not running")
//	}
//	err := local.CreateTable(ctx, table)
//	err = local.SeedFile(ctx, table.Name, "testdata/books.json")
package dynamock

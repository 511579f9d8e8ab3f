package dynamock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/nisimpson/dynaquery"
)

// Page is one scripted response served by a PageServer. A page without a
// LastEvaluatedKey terminates the traversal consuming it.
type Page struct {
	Items            []dynaquery.Item
	ScannedCount     int32
	LastEvaluatedKey dynaquery.Item
	Err              error  // served instead of the page when set
	Count            *int32 // overrides len(Items) when set
}

func (p Page) count() int32 {
	if p.Count != nil {
		return *p.Count
	}
	return int32(len(p.Items))
}

// PageServer serves a scripted sequence of pages to query and scan calls,
// in order, while recording every request it receives. It implements
// dynaquery.DynamoDBClient, so tests can assert on continuation-key
// threading and call counts:
//
//	server := dynamock.NewPageServer(
//	    dynamock.Page{Items: first, LastEvaluatedKey: key},
//	    dynamock.Page{Items: second},
//	)
//	session := dynaquery.NewSessionFromClient(server)
//
// Query and scan calls draw from the same script; a call past the end of
// the script returns an error.
type PageServer struct {
	QueryInputs []*dynamodb.QueryInput
	ScanInputs  []*dynamodb.ScanInput

	pages []Page
	calls int
}

// Ensure PageServer satisfies the client contract.
var _ DynamoDBAPI = (*PageServer)(nil)

// NewPageServer creates a PageServer scripted with the given pages.
func NewPageServer(pages ...Page) *PageServer {
	return &PageServer{pages: pages}
}

// Calls returns the total number of query and scan requests served.
func (s *PageServer) Calls() int { return s.calls }

func (s *PageServer) next() (Page, error) {
	if s.calls >= len(s.pages) {
		return Page{}, fmt.Errorf("page server exhausted after %d scripted pages", len(s.pages))
	}
	page := s.pages[s.calls]
	s.calls++
	return page, page.Err
}

// Query serves the next scripted page as a query response.
func (s *PageServer) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.QueryInputs = append(s.QueryInputs, params)
	page, err := s.next()
	if err != nil {
		return nil, err
	}
	return &dynamodb.QueryOutput{
		Items:            page.Items,
		Count:            page.count(),
		ScannedCount:     page.ScannedCount,
		LastEvaluatedKey: page.LastEvaluatedKey,
	}, nil
}

// Scan serves the next scripted page as a scan response.
func (s *PageServer) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	s.ScanInputs = append(s.ScanInputs, params)
	page, err := s.next()
	if err != nil {
		return nil, err
	}
	return &dynamodb.ScanOutput{
		Items:            page.Items,
		Count:            page.count(),
		ScannedCount:     page.ScannedCount,
		LastEvaluatedKey: page.LastEvaluatedKey,
	}, nil
}

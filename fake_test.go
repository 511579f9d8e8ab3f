package dynaquery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Test fixtures shared by the package tests.

type Book struct {
	Author string `dynamodbav:"author"`
	Title  string `dynamodbav:"title"`
	Year   int    `dynamodbav:"year"`
}

func booksTable() *Table {
	return NewTable("books", StringKey("author")).WithRangeKey(StringKey("title"))
}

func bookItem(author, title string, year int) Item {
	return Item{
		"author": &types.AttributeValueMemberS{Value: author},
		"title":  &types.AttributeValueMemberS{Value: title},
		"year":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", year)},
	}
}

func continuationKey(author, title string) Item {
	return Item{
		"author": &types.AttributeValueMemberS{Value: author},
		"title":  &types.AttributeValueMemberS{Value: title},
	}
}

// fakePage is one scripted response.
type fakePage struct {
	items    []Item
	scanned  int32
	lastKey  Item
	err      error
	count    *int32 // overrides len(items) when set
	capacity *types.ConsumedCapacity
}

// fakeClient serves scripted pages in order and records every request.
type fakeClient struct {
	pages       []fakePage
	queryInputs []*dynamodb.QueryInput
	scanInputs  []*dynamodb.ScanInput
	calls       int
}

func newFakeClient(pages ...fakePage) *fakeClient {
	return &fakeClient{pages: pages}
}

func (f *fakeClient) next() (fakePage, error) {
	if f.calls >= len(f.pages) {
		return fakePage{}, fmt.Errorf("no scripted page for call %d", f.calls)
	}
	page := f.pages[f.calls]
	f.calls++
	return page, page.err
}

func (p fakePage) countValue() int32 {
	if p.count != nil {
		return *p.count
	}
	return int32(len(p.items))
}

func (f *fakeClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInputs = append(f.queryInputs, params)
	page, err := f.next()
	if err != nil {
		return nil, err
	}
	return &dynamodb.QueryOutput{
		Items:            page.items,
		Count:            page.countValue(),
		ScannedCount:     page.scanned,
		LastEvaluatedKey: page.lastKey,
		ConsumedCapacity: page.capacity,
	}, nil
}

func (f *fakeClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanInputs = append(f.scanInputs, params)
	page, err := f.next()
	if err != nil {
		return nil, err
	}
	return &dynamodb.ScanOutput{
		Items:            page.items,
		Count:            page.countValue(),
		ScannedCount:     page.scanned,
		LastEvaluatedKey: page.lastKey,
		ConsumedCapacity: page.capacity,
	}, nil
}

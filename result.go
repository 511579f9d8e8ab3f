package dynaquery

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Result is a single page of query or scan results. Items decode lazily,
// one record per Next call, in the order returned by the backend:
//
//	page, err := query.Single(ctx)
//	for page.Next() {
//	    resource := page.Resource()
//	    // ...
//	}
//	if err := page.Err(); err != nil {
//	    // ...
//	}
//
// A Result is a forward-only view over its own items; iterating it never
// triggers a network call.
type Result[T any] struct {
	items    []Item
	count    int32
	scanned  int32
	capacity *types.ConsumedCapacity
	lastKey  Item

	pos     int
	current T
	err     error
}

func newResult[T any](items []Item, count, scanned int32, capacity *types.ConsumedCapacity, lastKey Item) (*Result[T], error) {
	if len(items) > int(count) {
		return nil, fmt.Errorf("page reports count %d but carries %d items: %w", count, len(items), ErrBadPage)
	}
	return &Result[T]{
		items:    items,
		count:    count,
		scanned:  scanned,
		capacity: capacity,
		lastKey:  lastKey,
	}, nil
}

func newQueryResult[T any](out *dynamodb.QueryOutput) (*Result[T], error) {
	if out == nil {
		return nil, fmt.Errorf("nil query response: %w", ErrBadPage)
	}
	return newResult[T](out.Items, out.Count, out.ScannedCount, out.ConsumedCapacity, out.LastEvaluatedKey)
}

func newScanResult[T any](out *dynamodb.ScanOutput) (*Result[T], error) {
	if out == nil {
		return nil, fmt.Errorf("nil scan response: %w", ErrBadPage)
	}
	return newResult[T](out.Items, out.Count, out.ScannedCount, out.ConsumedCapacity, out.LastEvaluatedKey)
}

// Next decodes the next item on the page. It returns false when the page is
// exhausted or a decode fails; check Err afterward.
func (r *Result[T]) Next() bool {
	if r.err != nil || r.pos >= len(r.items) {
		return false
	}
	var value T
	if err := attributevalue.UnmarshalMap(r.items[r.pos], &value); err != nil {
		r.err = fmt.Errorf("failed to decode item %d: %w", r.pos, err)
		return false
	}
	r.current = value
	r.pos++
	return true
}

// Resource returns the item decoded by the most recent successful Next call.
func (r *Result[T]) Resource() T { return r.current }

// Err returns the first decode error encountered during iteration.
func (r *Result[T]) Err() error { return r.err }

// Items returns the raw records on this page.
func (r *Result[T]) Items() []Item { return r.items }

// Count returns the number of items returned in this page.
func (r *Result[T]) Count() int32 { return r.count }

// ScannedCount returns the number of records the backend examined for this
// page. With a Select of COUNT this exceeds Count even though no items are
// carried.
func (r *Result[T]) ScannedCount() int32 { return r.scanned }

// ConsumedCapacity returns the throughput accounting attached to this page,
// when capacity reporting was requested.
func (r *Result[T]) ConsumedCapacity() *types.ConsumedCapacity { return r.capacity }

// LastEvaluatedKey returns the continuation key for this page, or nil when
// this is the final page. Its absence is the sole terminal signal; a page
// with zero items and a present key is not terminal.
func (r *Result[T]) LastEvaluatedKey() Item { return r.lastKey }

// HasMore reports whether more pages exist beyond this one.
func (r *Result[T]) HasMore() bool { return r.lastKey != nil }

package dynaquery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Scan performs an unconditional traversal over a table or secondary index.
// Results decode into T. Scan shares the Query configuration surface; the
// only semantic difference is the remote primitive invoked.
type Scan[T any] struct {
	op operation
}

// NewScan creates a scan over the table.
func NewScan[T any](session *Session, table *Table) *Scan[T] {
	return &Scan[T]{op: newOperation(session, table, nil)}
}

// NewIndexScan creates a scan over a secondary index. The owning table is
// derived from the index.
func NewIndexScan[T any](session *Session, index *Index) *Scan[T] {
	return &Scan[T]{op: newOperation(session, index.Table, index)}
}

// Limit sets the maximum number of items the backend evaluates per page.
func (s *Scan[T]) Limit(n int32) *Scan[T] {
	s.op.setLimit(n)
	return s
}

// Select sets the projection mode. Values outside the four modes DynamoDB
// defines are rejected with a ConfigurationError.
func (s *Scan[T]) Select(value types.Select) *Scan[T] {
	s.op.setSelect(value)
	return s
}

// ReturnConsumedCapacity sets the capacity-reporting mode. Values outside
// INDEXES, TOTAL and NONE are rejected with a ConfigurationError.
func (s *Scan[T]) ReturnConsumedCapacity(value types.ReturnConsumedCapacity) *Scan[T] {
	s.op.setReturnConsumedCapacity(value)
	return s
}

// Attributes restricts results to the named attributes.
func (s *Scan[T]) Attributes(names ...string) *Scan[T] {
	s.op.params.AttributesToGet = append(s.op.params.AttributesToGet, names...)
	return s
}

// ConsistentRead toggles strongly consistent reads.
func (s *Scan[T]) ConsistentRead(enabled bool) *Scan[T] {
	s.op.params.ConsistentRead = aws.Bool(enabled)
	return s
}

// Index sets the secondary index name directly. Combining it with an
// index-bound construction is rejected with a ConfigurationError.
//
// Deprecated: construct the operation with NewIndexScan instead.
func (s *Scan[T]) Index(name string) *Scan[T] {
	s.op.setIndexName(name)
	return s
}

// StartKey sets the exclusive start key, resuming a traversal after the
// given continuation key.
func (s *Scan[T]) StartKey(key Item) *Scan[T] {
	s.op.params.ExclusiveStartKey = key
	return s
}

// Apply adjusts the accumulated parameters directly.
func (s *Scan[T]) Apply(fn func(*Params)) *Scan[T] {
	fn(&s.op.params)
	return s
}

// Copy returns an independent scan bound to the same session and table,
// with its own copy of the accumulated parameters.
func (s *Scan[T]) Copy() *Scan[T] {
	clone := *s
	clone.op.params = s.op.params.Copy()
	return &clone
}

// Err returns the first configuration error recorded on the scan, if any.
func (s *Scan[T]) Err() error { return s.op.err }

func (s *Scan[T]) fetch(ctx context.Context, p Params) (*Result[T], error) {
	input, err := p.scanInput()
	if err != nil {
		return nil, err
	}
	out, err := s.op.session.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", p.TableName, err)
	}
	return newScanResult[T](out)
}

// Single executes the scan and returns exactly one page, regardless of
// whether more pages exist. The result never triggers further requests.
func (s *Scan[T]) Single(ctx context.Context) (*Result[T], error) {
	p, err := s.op.buildParams()
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, p)
}

// All returns a cursor over every item, fetching pages as the cursor is
// consumed. Parameters are snapshot when consumption starts; each All call
// produces an independent traversal.
func (s *Scan[T]) All() *Cursor[T] {
	return newCursor(s.op.session.Logger, s.op.buildParams, s.fetch)
}

package dynaquery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// notProvided marks a key component that was never supplied. It is distinct
// from nil, which is a legal key value for encoders that accept it.
type notProvidedType struct{}

var notProvided any = notProvidedType{}

// operation carries the state shared by Query and Scan builders: the bound
// session, table or index, accumulated parameters, and the first
// configuration error.
type operation struct {
	session *Session
	table   *Table
	index   *Index
	params  Params
	err     error
}

func newOperation(session *Session, table *Table, index *Index) operation {
	if index != nil {
		table = index.Table
	}
	return operation{
		session: session,
		table:   table,
		index:   index,
	}
}

func (o *operation) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func (o *operation) setLimit(n int32) {
	// Passed through verbatim on every page; the backend validates.
	o.params.Limit = aws.Int32(n)
}

func (o *operation) setSelect(value types.Select) {
	switch value {
	case types.SelectAllAttributes,
		types.SelectAllProjectedAttributes,
		types.SelectCount,
		types.SelectSpecificAttributes:
		o.params.Select = value
	default:
		o.fail(&ConfigurationError{Param: "Select", Value: string(value)})
	}
}

func (o *operation) setReturnConsumedCapacity(value types.ReturnConsumedCapacity) {
	switch value {
	case types.ReturnConsumedCapacityIndexes,
		types.ReturnConsumedCapacityTotal,
		types.ReturnConsumedCapacityNone:
		o.params.ReturnConsumedCapacity = value
	default:
		o.fail(&ConfigurationError{Param: "ReturnConsumedCapacity", Value: string(value)})
	}
}

func (o *operation) setIndexName(name string) {
	if o.index != nil {
		o.fail(&ConfigurationError{
			Param:  "IndexName",
			Value:  name,
			Reason: fmt.Sprintf("operation is already bound to index %q", o.index.Name),
		})
		return
	}
	o.params.IndexName = name
}

// buildParams snapshots the operation into an independent parameter set,
// resolving the table and index names against the current session state.
func (o *operation) buildParams() (Params, error) {
	if o.err != nil {
		return Params{}, o.err
	}
	p := o.params.Copy()
	p.TableName = o.table.ResolvedName(o.session)
	if o.index != nil {
		p.IndexName = o.index.Name
	}
	return p, nil
}

// keyFields returns the key schema the operation queries against: the index
// schema when bound to an index, the table schema otherwise.
func (o *operation) keyFields() []KeyField {
	if o.index != nil {
		return o.index.KeyFields()
	}
	return o.table.KeyFields()
}

// Query performs a key-conditioned retrieval against a table or secondary
// index. Results decode into T. A hash key value is required at
// construction; a range key value is optional via Range. Configuration
// methods mutate the query and return it for chaining.
type Query[T any] struct {
	op         operation
	hashValue  any
	rangeValue any
}

// NewQuery creates a query against the table for the given hash key value.
func NewQuery[T any](session *Session, table *Table, hashValue any) *Query[T] {
	return &Query[T]{
		op:         newOperation(session, table, nil),
		hashValue:  hashValue,
		rangeValue: notProvided,
	}
}

// NewIndexQuery creates a query against a secondary index for the given
// hash key value. The owning table is derived from the index.
func NewIndexQuery[T any](session *Session, index *Index, hashValue any) *Query[T] {
	return &Query[T]{
		op:         newOperation(session, index.Table, index),
		hashValue:  hashValue,
		rangeValue: notProvided,
	}
}

// Range sets the range key value for the key condition.
func (q *Query[T]) Range(value any) *Query[T] {
	q.rangeValue = value
	return q
}

// Limit sets the maximum number of items the backend evaluates per page.
func (q *Query[T]) Limit(n int32) *Query[T] {
	q.op.setLimit(n)
	return q
}

// Select sets the projection mode. Values outside the four modes DynamoDB
// defines are rejected with a ConfigurationError.
func (q *Query[T]) Select(value types.Select) *Query[T] {
	q.op.setSelect(value)
	return q
}

// ReturnConsumedCapacity sets the capacity-reporting mode. Values outside
// INDEXES, TOTAL and NONE are rejected with a ConfigurationError.
func (q *Query[T]) ReturnConsumedCapacity(value types.ReturnConsumedCapacity) *Query[T] {
	q.op.setReturnConsumedCapacity(value)
	return q
}

// Attributes restricts results to the named attributes.
func (q *Query[T]) Attributes(names ...string) *Query[T] {
	q.op.params.AttributesToGet = append(q.op.params.AttributesToGet, names...)
	return q
}

// ConsistentRead toggles strongly consistent reads.
func (q *Query[T]) ConsistentRead(enabled bool) *Query[T] {
	q.op.params.ConsistentRead = aws.Bool(enabled)
	return q
}

// Index sets the secondary index name directly. Combining it with an
// index-bound construction is rejected with a ConfigurationError.
//
// Deprecated: construct the operation with NewIndexQuery instead.
func (q *Query[T]) Index(name string) *Query[T] {
	q.op.setIndexName(name)
	return q
}

// StartKey sets the exclusive start key, resuming a traversal after the
// given continuation key.
func (q *Query[T]) StartKey(key Item) *Query[T] {
	q.op.params.ExclusiveStartKey = key
	return q
}

// Apply adjusts the accumulated parameters directly.
func (q *Query[T]) Apply(fn func(*Params)) *Query[T] {
	fn(&q.op.params)
	return q
}

// Copy returns an independent query bound to the same session and table,
// with its own copy of the accumulated parameters.
func (q *Query[T]) Copy() *Query[T] {
	clone := *q
	clone.op.params = q.op.params.Copy()
	return &clone
}

// Err returns the first configuration error recorded on the query, if any.
func (q *Query[T]) Err() error { return q.op.err }

func (q *Query[T]) buildParams() (Params, error) {
	p, err := q.op.buildParams()
	if err != nil {
		return p, err
	}
	conditions, err := q.keyConditions()
	if err != nil {
		return Params{}, err
	}
	p.KeyConditions = conditions
	return p, nil
}

// keyConditions derives the key-condition block by zipping the declared key
// fields against the supplied hash and range values. Fields whose value was
// never supplied are omitted; each supplied value becomes exactly one
// equality condition, encoded through its field's encoder.
func (q *Query[T]) keyConditions() (map[string]types.Condition, error) {
	var (
		fields     = q.op.keyFields()
		values     = []any{q.hashValue, q.rangeValue}
		conditions = make(map[string]types.Condition)
	)
	for i, field := range fields {
		if i >= len(values) {
			break
		}
		if values[i] == notProvided {
			continue
		}
		encoded, err := field.Encode(values[i])
		if err != nil {
			return nil, fmt.Errorf("failed to encode key condition: %w", err)
		}
		conditions[field.Name] = types.Condition{
			ComparisonOperator: types.ComparisonOperatorEq,
			AttributeValueList: []types.AttributeValue{encoded},
		}
	}
	return conditions, nil
}

func (q *Query[T]) fetch(ctx context.Context, p Params) (*Result[T], error) {
	out, err := q.op.session.Client.Query(ctx, p.queryInput())
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", p.TableName, err)
	}
	return newQueryResult[T](out)
}

// Single executes the query and returns exactly one page, regardless of
// whether more pages exist. The result never triggers further requests.
func (q *Query[T]) Single(ctx context.Context) (*Result[T], error) {
	p, err := q.buildParams()
	if err != nil {
		return nil, err
	}
	return q.fetch(ctx, p)
}

// All returns a cursor over every matching item, fetching pages as the
// cursor is consumed. Parameters are snapshot when consumption starts;
// each All call produces an independent traversal.
func (q *Query[T]) All() *Cursor[T] {
	return newCursor(q.op.session.Logger, q.buildParams, q.fetch)
}

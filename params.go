package dynaquery

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Params accumulates the request parameters shared by Query and Scan
// operations. A zero Params is valid; fields left unset are omitted from the
// request. Params is assembled by the operation builders and may also be
// adjusted directly through an operation's Apply method.
//
// A Params value is not safe for concurrent mutation. Branching a traversal
// requires copying first; see Copy.
type Params struct {
	TableName              string
	IndexName              string
	KeyConditions          map[string]types.Condition
	Limit                  *int32
	Select                 types.Select
	ReturnConsumedCapacity types.ReturnConsumedCapacity
	ExclusiveStartKey      Item
	AttributesToGet        []string
	ConsistentRead         *bool
}

// Copy returns a Params value whose maps and slices are independently
// duplicated at the top level. Attribute values themselves are shared; they
// are treated as immutable once built.
func (p Params) Copy() Params {
	out := p
	if p.KeyConditions != nil {
		out.KeyConditions = maps.Clone(p.KeyConditions)
	}
	if p.ExclusiveStartKey != nil {
		out.ExclusiveStartKey = maps.Clone(p.ExclusiveStartKey)
	}
	out.AttributesToGet = slices.Clone(p.AttributesToGet)
	return out
}

// queryInput maps the accumulated parameters onto a Query request. The query
// path sticks to the legacy parameter family (KeyConditions,
// AttributesToGet) because DynamoDB rejects requests mixing legacy and
// expression parameters.
func (p Params) queryInput() *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(p.TableName),
		KeyConditions:          p.KeyConditions,
		Limit:                  p.Limit,
		Select:                 p.Select,
		ReturnConsumedCapacity: p.ReturnConsumedCapacity,
		ExclusiveStartKey:      p.ExclusiveStartKey,
		AttributesToGet:        p.AttributesToGet,
		ConsistentRead:         p.ConsistentRead,
	}
	if p.IndexName != "" {
		input.IndexName = aws.String(p.IndexName)
	}
	return input
}

// scanInput maps the accumulated parameters onto a Scan request. Scans carry
// no key conditions, so requested attributes are expressed as a projection
// expression.
func (p Params) scanInput() (*dynamodb.ScanInput, error) {
	input := &dynamodb.ScanInput{
		TableName:              aws.String(p.TableName),
		Limit:                  p.Limit,
		Select:                 p.Select,
		ReturnConsumedCapacity: p.ReturnConsumedCapacity,
		ExclusiveStartKey:      p.ExclusiveStartKey,
		ConsistentRead:         p.ConsistentRead,
	}
	if p.IndexName != "" {
		input.IndexName = aws.String(p.IndexName)
	}
	if len(p.AttributesToGet) > 0 {
		names := make([]expression.NameBuilder, 0, len(p.AttributesToGet))
		for _, attr := range p.AttributesToGet {
			names = append(names, expression.Name(attr))
		}
		expr, err := expression.NewBuilder().
			WithProjection(expression.NamesList(names[0], names[1:]...)).
			Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build projection expression: %w", err)
		}
		input.ProjectionExpression = expr.Projection()
		input.ExpressionAttributeNames = expr.Names()
	}
	return input, nil
}

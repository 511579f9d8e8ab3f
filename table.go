package dynaquery

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EncodeFunc converts a key value into its native DynamoDB representation.
type EncodeFunc func(value any) (types.AttributeValue, error)

// KeyField describes one component of a table or index key schema: the
// attribute name, its scalar type, and the encoding applied to values
// supplied for key conditions.
type KeyField struct {
	Name   string
	Type   types.ScalarAttributeType
	Encode EncodeFunc
}

// StringKey returns a key field backed by the S attribute type.
func StringKey(name string) KeyField {
	return KeyField{
		Name: name,
		Type: types.ScalarAttributeTypeS,
		Encode: func(value any) (types.AttributeValue, error) {
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("key %s expects a string, got %T", name, value)
			}
			return &types.AttributeValueMemberS{Value: s}, nil
		},
	}
}

// NumberKey returns a key field backed by the N attribute type. Values are
// formatted into DynamoDB's decimal string form.
func NumberKey(name string) KeyField {
	return KeyField{
		Name: name,
		Type: types.ScalarAttributeTypeN,
		Encode: func(value any) (types.AttributeValue, error) {
			s, err := formatNumber(value)
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", name, err)
			}
			return &types.AttributeValueMemberN{Value: s}, nil
		},
	}
}

// BinaryKey returns a key field backed by the B attribute type.
func BinaryKey(name string) KeyField {
	return KeyField{
		Name: name,
		Type: types.ScalarAttributeTypeB,
		Encode: func(value any) (types.AttributeValue, error) {
			b, ok := value.([]byte)
			if !ok {
				return nil, fmt.Errorf("key %s expects a byte slice, got %T", name, value)
			}
			return &types.AttributeValueMemberB{Value: b}, nil
		},
	}
}

func formatNumber(value any) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return "", fmt.Errorf("expects a numeric value, got %q", v)
		}
		return v, nil
	default:
		return "", fmt.Errorf("expects a numeric value, got %T", value)
	}
}

// Table describes a DynamoDB table's name and key schema. The hash key is
// required; the range key is optional.
type Table struct {
	Name     string
	HashKey  KeyField
	RangeKey *KeyField
}

// NewTable creates a table definition with the given hash key.
func NewTable(name string, hashKey KeyField) *Table {
	return &Table{
		Name:    name,
		HashKey: hashKey,
	}
}

// WithRangeKey sets the table's range key and returns the table.
func (t *Table) WithRangeKey(key KeyField) *Table {
	t.RangeKey = &key
	return t
}

// KeyFields returns the declared key fields in schema order: the hash field
// first, followed by the range field when one is declared.
func (t *Table) KeyFields() []KeyField {
	fields := []KeyField{t.HashKey}
	if t.RangeKey != nil {
		fields = append(fields, *t.RangeKey)
	}
	return fields
}

// ResolvedName returns the table name with the session's prefix applied.
// Resolution happens at execution time, so late changes to the session
// prefix are honored by subsequent traversals.
func (t *Table) ResolvedName(s *Session) string {
	return s.ResolvedName(t.Name)
}

package dynamock

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClientDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("query expectation", func(t *testing.T) {
		client := NewMockClient(t)
		client.QueryFunc = func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Count: 3}, nil
		}

		out, err := client.Query(ctx, &dynamodb.QueryInput{})
		require.NoError(t, err)
		assert.Equal(t, int32(3), out.Count)
	})

	t.Run("scan expectation", func(t *testing.T) {
		client := NewMockClient(t)
		client.ScanFunc = func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			return nil, assert.AnError
		}

		_, err := client.Scan(ctx, &dynamodb.ScanInput{})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

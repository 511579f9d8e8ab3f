package dynaquery

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func init() {
	// Register DynamoDB types with gob
	gob.Register(map[string]types.AttributeValue{})
	gob.Register(&types.AttributeValueMemberS{})
	gob.Register(&types.AttributeValueMemberN{})
	gob.Register(&types.AttributeValueMemberB{})
	gob.Register(&types.AttributeValueMemberSS{})
	gob.Register(&types.AttributeValueMemberNS{})
	gob.Register(&types.AttributeValueMemberBS{})
	gob.Register(&types.AttributeValueMemberM{})
	gob.Register(&types.AttributeValueMemberL{})
	gob.Register(&types.AttributeValueMemberNULL{})
	gob.Register(&types.AttributeValueMemberBOOL{})
}

// MarshalStartKey encodes a page's last evaluated key into an opaque string
// token that can be handed to clients and later resumed from. An empty or
// nil key yields an empty token. The token is stateless; nothing is stored
// server side.
func MarshalStartKey(key Item) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(key); err != nil {
		return "", fmt.Errorf("failed to encode start key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

// UnmarshalStartKey decodes a token produced by MarshalStartKey back into an
// exclusive start key. An empty token yields a nil key.
func UnmarshalStartKey(token string) (Item, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode start key token: %w", err)
	}

	var key Item
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&key); err != nil {
		return nil, fmt.Errorf("failed to decode start key: %w", err)
	}

	return key, nil
}

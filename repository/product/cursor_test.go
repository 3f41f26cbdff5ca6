package product

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestCursorRoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"uetr":       &types.AttributeValueMemberS{Value: "p1"},
		"entityType": &types.AttributeValueMemberS{Value: "product"},
		"newPrice":   &types.AttributeValueMemberN{Value: "19.99"},
	}

	encoded := encodeCursor(key)
	assert.NotEmpty(t, encoded)

	decoded, ok := decodeCursor(encoded)
	assert.True(t, ok)
	assert.Equal(t, key["uetr"], decoded["uetr"])
	assert.Equal(t, key["entityType"], decoded["entityType"])
	assert.Equal(t, key["newPrice"], decoded["newPrice"])
}

func TestEncodeCursor_MissingKey(t *testing.T) {
	assert.Empty(t, encodeCursor(map[string]types.AttributeValue{}))
	assert.Empty(t, encodeCursor(map[string]types.AttributeValue{
		"newPrice": &types.AttributeValueMemberN{Value: "19.99"},
	}))
}

func TestDecodeCursor_Malformed(t *testing.T) {
	cases := []string{
		"",
		"not base64!!!",
		base64.RawURLEncoding.EncodeToString([]byte("not json")),
		base64.RawURLEncoding.EncodeToString([]byte(`{"newPrice":10}`)),
		base64.RawURLEncoding.EncodeToString([]byte(`{"uetr":"p1"}`)),
	}

	for _, raw := range cases {
		start, ok := decodeCursor(raw)
		assert.False(t, ok, "raw=%q", raw)
		assert.Nil(t, start, "raw=%q", raw)
	}
}

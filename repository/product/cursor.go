package product

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// indexCursor is the serialized form of the price index key triple. It is
// base64url-encoded so it can travel as a query parameter.
type indexCursor struct {
	UETR       string  `json:"uetr"`
	EntityType string  `json:"entityType"`
	NewPrice   float64 `json:"newPrice"`
}

func encodeCursor(key map[string]types.AttributeValue) string {
	cur := indexCursor{EntityType: productEntityType}

	if v, ok := key["uetr"].(*types.AttributeValueMemberS); ok {
		cur.UETR = v.Value
	}
	if v, ok := key["entityType"].(*types.AttributeValueMemberS); ok {
		cur.EntityType = v.Value
	}
	if v, ok := key["newPrice"].(*types.AttributeValueMemberN); ok {
		if n, err := strconv.ParseFloat(v.Value, 64); err == nil {
			cur.NewPrice = n
		}
	}
	if cur.UETR == "" {
		return ""
	}

	raw, err := json.Marshal(cur)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeCursor returns the exclusive start key for a query, or ok=false when
// the cursor is absent or malformed. Malformed cursors are never an error.
func decodeCursor(raw string) (map[string]types.AttributeValue, bool) {
	if raw == "" {
		return nil, false
	}

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, false
	}

	var cur indexCursor
	if err := json.Unmarshal(data, &cur); err != nil {
		return nil, false
	}
	if cur.UETR == "" || cur.EntityType == "" {
		return nil, false
	}

	return map[string]types.AttributeValue{
		"uetr":       &types.AttributeValueMemberS{Value: cur.UETR},
		"entityType": &types.AttributeValueMemberS{Value: cur.EntityType},
		"newPrice":   &types.AttributeValueMemberN{Value: strconv.FormatFloat(cur.NewPrice, 'f', -1, 64)},
	}, true
}

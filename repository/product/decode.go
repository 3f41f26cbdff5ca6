package product

import (
	"math"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rewardslab/rewards-backend/model"
)

// decodeProduct maps a raw item to the product record attribute by attribute.
// The generic unmarshaler is deliberately not used here: stored numerics that
// fail to parse must decode to nil (absent) instead of failing the whole page.
func decodeProduct(item map[string]types.AttributeValue) model.Product {
	return model.Product{
		UETR:        stringAttr(item, "uetr"),
		ProductName: stringAttr(item, "productName"),
		NewPrice:    numberAttr(item, "newPrice"),
		OldPrice:    numberAttr(item, "oldPrice"),
		Gender:      stringAttr(item, "gender"),
		Category:    stringListAttr(item, "category"),
		Colors:      stringListAttr(item, "colors"),
		Rating:      numberAttr(item, "rating"),
		OnSale:      boolAttr(item, "onSale"),
		ImageURL:    stringAttr(item, "imageUrl"),
		ImageKey:    stringAttr(item, "imageKey"),
		CreatedBy:   stringAttr(item, "createdBy"),
		CreatedAt:   stringAttr(item, "createdAt"),
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func numberAttr(item map[string]types.AttributeValue, name string) *float64 {
	v, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return nil
	}
	n, err := strconv.ParseFloat(v.Value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func stringListAttr(item map[string]types.AttributeValue, name string) []string {
	v, ok := item[name].(*types.AttributeValueMemberL)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(v.Value))
	for _, el := range v.Value {
		if s, ok := el.(*types.AttributeValueMemberS); ok {
			out = append(out, s.Value)
		}
	}
	return out
}

func boolAttr(item map[string]types.AttributeValue, name string) bool {
	if v, ok := item[name].(*types.AttributeValueMemberBOOL); ok {
		return v.Value
	}
	return false
}

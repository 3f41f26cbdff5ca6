package product

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
)

// productEntityType is the constant partition attribute of the price index, so
// a single range query covers the whole catalog ordered by newPrice.
const productEntityType = "product"

// DynamoAPI is the slice of the DynamoDB client this repository uses.
type DynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type Dynamo struct {
	client DynamoAPI
	table  string
	index  string
}

type ProductRepository interface {
	QueryByPrice(ctx context.Context, criteria *model.ProductCriteria) (*model.ProductPage, error)
	ScanAll(ctx context.Context) ([]model.Product, error)
	Put(ctx context.Context, product *model.Product) error
}

func NewProductRepository(client DynamoAPI, table, index string) ProductRepository {
	return &Dynamo{client: client, table: table, index: index}
}

// QueryByPrice serves the indexed path: a range query over the price-ordered
// index, with the price bucket narrowing the key range and the remaining
// criteria pushed down as a filter expression. Note that DynamoDB applies the
// filter after the Limit cutoff, so a page can come back short while more
// matches remain further in the range; HasNext follows LastEvaluatedKey, not
// page fullness.
func (r *Dynamo) QueryByPrice(ctx context.Context, criteria *model.ProductCriteria) (*model.ProductPage, error) {
	keyCond := expression.Key("entityType").Equal(expression.Value(productEntityType))

	switch criteria.Bucket {
	case constant.BucketBelow25:
		keyCond = keyCond.And(expression.Key("newPrice").LessThan(expression.Value(constant.PriceBucketLow)))
	case constant.Bucket25To75:
		keyCond = keyCond.And(expression.Key("newPrice").Between(
			expression.Value(constant.PriceBucketLow), expression.Value(constant.PriceBucketHigh)))
	case constant.BucketAbove75:
		keyCond = keyCond.And(expression.Key("newPrice").GreaterThan(expression.Value(constant.PriceBucketHigh)))
	}

	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if filter, ok := buildFilter(criteria); ok {
		builder = builder.WithFilter(filter)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, err
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.index),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(int32(criteria.PageSize)),
		ScanIndexForward:          aws.Bool(criteria.Sort != constant.SortPriceDesc),
	}

	// A cursor that fails to decode is treated as "start from the beginning".
	if start, ok := decodeCursor(criteria.Cursor); ok {
		input.ExclusiveStartKey = start
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	page := &model.ProductPage{Items: make([]model.Product, 0, len(out.Items))}
	for _, item := range out.Items {
		page.Items = append(page.Items, decodeProduct(item))
	}
	if len(out.LastEvaluatedKey) > 0 {
		page.NextCursor = encodeCursor(out.LastEvaluatedKey)
		page.HasNext = page.NextCursor != ""
	}

	return page, nil
}

func buildFilter(criteria *model.ProductCriteria) (expression.ConditionBuilder, bool) {
	conds := make([]expression.ConditionBuilder, 0, 4)

	if len(criteria.Genders) > 0 {
		first := expression.Value(criteria.Genders[0])
		rest := make([]expression.OperandBuilder, 0, len(criteria.Genders)-1)
		for _, g := range criteria.Genders[1:] {
			rest = append(rest, expression.Value(g))
		}
		conds = append(conds, expression.Name("gender").In(first, rest...))
	}

	if criteria.Category != "" {
		conds = append(conds, expression.Name("category").Contains(criteria.Category))
	}

	if len(criteria.Colors) > 0 {
		colorCond := expression.Name("colors").Contains(criteria.Colors[0])
		for _, c := range criteria.Colors[1:] {
			colorCond = colorCond.Or(expression.Name("colors").Contains(c))
		}
		conds = append(conds, colorCond)
	}

	if criteria.MinRating != nil {
		conds = append(conds, expression.Name("rating").GreaterThanEqual(expression.Value(*criteria.MinRating)))
	}

	if len(conds) == 0 {
		return expression.ConditionBuilder{}, false
	}

	filter := conds[0]
	for _, c := range conds[1:] {
		filter = filter.And(c)
	}
	return filter, true
}

// ScanAll retrieves the complete product set through the store-native page
// token loop. O(table size); only the fallback path uses it.
func (r *Dynamo) ScanAll(ctx context.Context) ([]model.Product, error) {
	items := make([]model.Product, 0)
	var start map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			items = append(items, decodeProduct(item))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *Dynamo) Put(ctx context.Context, product *model.Product) error {
	item := map[string]types.AttributeValue{
		"uetr":        &types.AttributeValueMemberS{Value: product.UETR},
		"entityType":  &types.AttributeValueMemberS{Value: productEntityType},
		"productName": &types.AttributeValueMemberS{Value: product.ProductName},
		"newPrice":    &types.AttributeValueMemberN{Value: formatNumber(product.NewPrice)},
		"category":    stringListValue(product.Category),
		"colors":      stringListValue(product.Colors),
		"onSale":      &types.AttributeValueMemberBOOL{Value: product.OnSale},
		"imageUrl":    &types.AttributeValueMemberS{Value: product.ImageURL},
		"imageKey":    &types.AttributeValueMemberS{Value: product.ImageKey},
		"createdBy":   &types.AttributeValueMemberS{Value: product.CreatedBy},
		"createdAt":   &types.AttributeValueMemberS{Value: product.CreatedAt},
	}
	if product.OldPrice != nil {
		item["oldPrice"] = &types.AttributeValueMemberN{Value: formatNumber(product.OldPrice)}
	}
	if product.Gender != "" {
		item["gender"] = &types.AttributeValueMemberS{Value: product.Gender}
	}
	if product.Rating != nil {
		item["rating"] = &types.AttributeValueMemberN{Value: formatNumber(product.Rating)}
	}

	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

func formatNumber(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func stringListValue(values []string) types.AttributeValue {
	list := make([]types.AttributeValue, 0, len(values))
	for _, v := range values {
		list = append(list, &types.AttributeValueMemberS{Value: v})
	}
	return &types.AttributeValueMemberL{Value: list}
}

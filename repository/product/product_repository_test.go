package product

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
	"github.com/stretchr/testify/assert"
)

type fakeDynamo struct {
	queryIn  *dynamodb.QueryInput
	queryOut *dynamodb.QueryOutput
	queryErr error
	scanOuts []*dynamodb.ScanOutput
	scanIns  []*dynamodb.ScanInput
	putIn    *dynamodb.PutItemInput
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = params
	return f.queryOut, f.queryErr
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIns = append(f.scanIns, params)
	out := f.scanOuts[0]
	f.scanOuts = f.scanOuts[1:]
	return out, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = params
	return &dynamodb.PutItemOutput{}, nil
}

func productItem(uetr, price string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"uetr":       &types.AttributeValueMemberS{Value: uetr},
		"entityType": &types.AttributeValueMemberS{Value: "product"},
		"newPrice":   &types.AttributeValueMemberN{Value: price},
	}
}

func TestQueryByPrice(t *testing.T) {
	t.Run("page with remaining range carries a cursor", func(t *testing.T) {
		fake := &fakeDynamo{
			queryOut: &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{productItem("p1", "10"), productItem("p2", "20")},
				LastEvaluatedKey: productItem("p2", "20"),
			},
		}
		repo := NewProductRepository(fake, "products-table", "price-index")

		page, err := repo.QueryByPrice(context.Background(), &model.ProductCriteria{PageSize: 2})

		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.True(t, page.HasNext)
		assert.NotEmpty(t, page.NextCursor)

		assert.Equal(t, "products-table", *fake.queryIn.TableName)
		assert.Equal(t, "price-index", *fake.queryIn.IndexName)
		assert.Equal(t, int32(2), *fake.queryIn.Limit)
		assert.True(t, *fake.queryIn.ScanIndexForward)
		assert.Nil(t, fake.queryIn.ExclusiveStartKey)
	})

	t.Run("final page has no cursor", func(t *testing.T) {
		fake := &fakeDynamo{
			queryOut: &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{productItem("p1", "10")},
			},
		}
		repo := NewProductRepository(fake, "products-table", "price-index")

		page, err := repo.QueryByPrice(context.Background(), &model.ProductCriteria{PageSize: 20})

		assert.NoError(t, err)
		assert.False(t, page.HasNext)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("descending sort reverses the index walk", func(t *testing.T) {
		fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{}}
		repo := NewProductRepository(fake, "products-table", "price-index")

		_, err := repo.QueryByPrice(context.Background(), &model.ProductCriteria{
			PageSize: 20,
			Sort:     constant.SortPriceDesc,
		})

		assert.NoError(t, err)
		assert.False(t, *fake.queryIn.ScanIndexForward)
	})

	t.Run("valid cursor becomes the exclusive start key", func(t *testing.T) {
		cursor := encodeCursor(productItem("p2", "20"))

		fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{}}
		repo := NewProductRepository(fake, "products-table", "price-index")

		_, err := repo.QueryByPrice(context.Background(), &model.ProductCriteria{
			PageSize: 20,
			Cursor:   cursor,
		})

		assert.NoError(t, err)
		if assert.NotNil(t, fake.queryIn.ExclusiveStartKey) {
			assert.Equal(t, productItem("p2", "20"), fake.queryIn.ExclusiveStartKey)
		}
	})

	t.Run("malformed cursor starts from the beginning", func(t *testing.T) {
		fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{}}
		repo := NewProductRepository(fake, "products-table", "price-index")

		_, err := repo.QueryByPrice(context.Background(), &model.ProductCriteria{
			PageSize: 20,
			Cursor:   "garbage!!",
		})

		assert.NoError(t, err)
		assert.Nil(t, fake.queryIn.ExclusiveStartKey)
	})

	t.Run("query failure surfaces raw", func(t *testing.T) {
		fake := &fakeDynamo{queryErr: errors.New("index not found")}
		repo := NewProductRepository(fake, "products-table", "price-index")

		page, err := repo.QueryByPrice(context.Background(), &model.ProductCriteria{PageSize: 20})

		assert.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestScanAll_FollowsPageTokens(t *testing.T) {
	fake := &fakeDynamo{
		scanOuts: []*dynamodb.ScanOutput{
			{
				Items:            []map[string]types.AttributeValue{productItem("p1", "10")},
				LastEvaluatedKey: productItem("p1", "10"),
			},
			{
				Items: []map[string]types.AttributeValue{productItem("p2", "20")},
			},
		},
	}
	repo := NewProductRepository(fake, "products-table", "price-index")

	items, err := repo.ScanAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].UETR)
	assert.Equal(t, "p2", items[1].UETR)

	if assert.Len(t, fake.scanIns, 2) {
		assert.Nil(t, fake.scanIns[0].ExclusiveStartKey)
		assert.Equal(t, productItem("p1", "10"), fake.scanIns[1].ExclusiveStartKey)
	}
}

func TestPut_BuildsItem(t *testing.T) {
	price := 19.99
	rating := 4.5

	fake := &fakeDynamo{}
	repo := NewProductRepository(fake, "products-table", "price-index")

	err := repo.Put(context.Background(), &model.Product{
		UETR:        "p1",
		ProductName: "Sneaker",
		NewPrice:    &price,
		Gender:      "men",
		Category:    []string{"shoes"},
		Colors:      []string{"red"},
		Rating:      &rating,
		OnSale:      true,
		ImageURL:    "https://bucket/products/p1.png",
		ImageKey:    "products/p1.png",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, fake.putIn) {
		item := fake.putIn.Item
		assert.Equal(t, &types.AttributeValueMemberS{Value: "product"}, item["entityType"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "19.99"}, item["newPrice"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "4.5"}, item["rating"])
		assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, item["onSale"])
		_, hasOldPrice := item["oldPrice"]
		assert.False(t, hasOldPrice)
	}
}

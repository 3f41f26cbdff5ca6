package user

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rewardslab/rewards-backend/model"
)

// DynamoAPI is the slice of the DynamoDB client this repository uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type Dynamo struct {
	client DynamoAPI
	table  string
	pk     string
}

type UserRepository interface {
	Put(ctx context.Context, user *model.User) error
	Exists(ctx context.Context, uetr string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRewards(ctx context.Context, uetr string, points int, cardLast4 string) error
}

func NewUserRepository(client DynamoAPI, table, pk string) UserRepository {
	return &Dynamo{client: client, table: table, pk: pk}
}

func (r *Dynamo) Put(ctx context.Context, user *model.User) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item: map[string]types.AttributeValue{
			"fileKey":   &types.AttributeValueMemberS{Value: user.FileKey},
			"uetr":      &types.AttributeValueMemberS{Value: user.UETR},
			"name":      &types.AttributeValueMemberS{Value: user.Name},
			"email":     &types.AttributeValueMemberS{Value: user.Email},
			"phone":     &types.AttributeValueMemberS{Value: user.Phone},
			"userId":    &types.AttributeValueMemberS{Value: user.UserID},
			"createdBy": &types.AttributeValueMemberS{Value: user.CreatedBy},
			"createdAt": &types.AttributeValueMemberS{Value: user.CreatedAt},
		},
	})
	return err
}

func (r *Dynamo) Exists(ctx context.Context, uetr string) (bool, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.table),
		Key:                      map[string]types.AttributeValue{r.pk: &types.AttributeValueMemberS{Value: uetr}},
		ProjectionExpression:     aws.String("#pk"),
		ExpressionAttributeNames: map[string]string{"#pk": r.pk},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *Dynamo) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	var start map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(r.table),
			// "name" is a reserved word in DynamoDB
			ProjectionExpression:     aws.String("uetr, #name, email, phone, userId, createdBy, createdAt"),
			ExpressionAttributeNames: map[string]string{"#name": "name"},
			ExclusiveStartKey:        start,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			users = append(users, decodeUser(item))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return users, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *Dynamo) UpdateRewards(ctx context.Context, uetr string, points int, cardLast4 string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              map[string]types.AttributeValue{r.pk: &types.AttributeValueMemberS{Value: uetr}},
		UpdateExpression: aws.String("SET rewardsPoints = :p, cardLast4 = :l, updatedAt = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberN{Value: strconv.Itoa(points)},
			":l": &types.AttributeValueMemberS{Value: cardLast4},
			":u": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func decodeUser(item map[string]types.AttributeValue) model.User {
	return model.User{
		UETR:      stringAttr(item, "uetr"),
		Name:      stringAttr(item, "name"),
		Email:     stringAttr(item, "email"),
		Phone:     stringAttr(item, "phone"),
		UserID:    stringAttr(item, "userId"),
		CreatedBy: stringAttr(item, "createdBy"),
		CreatedAt: stringAttr(item, "createdAt"),
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

package repository

import (
	"context"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID                string `dynamodbav:"id"`
	Email             string `dynamodbav:"email"`
	DisplayName       string `dynamodbav:"display_name"`
	DeviceToken       string `dynamodbav:"device_token,omitempty"`
	GatewayCustomerID string `dynamodbav:"gateway_customer_id,omitempty"`
}

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:                it.ID,
		Email:             it.Email,
		DisplayName:       it.DisplayName,
		DeviceToken:       it.DeviceToken,
		GatewayCustomerID: it.GatewayCustomerID,
	}, nil
}

// SetGatewayCustomerID creates the profile row when it does not exist yet.
func (r *UserDynamoRepository) SetGatewayCustomerID(ctx context.Context, id, customerID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey(id),
		UpdateExpression: aws.String("SET gateway_customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	return err
}

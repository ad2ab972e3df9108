package repository

import (
	"context"
	"time"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// cleanup_after and expires_at are epoch seconds so expires_at can double as
// the table's TTL attribute.
type pendingPaymentItem struct {
	ID               string            `dynamodbav:"id"`
	PurchaseType     string            `dynamodbav:"purchase_type"`
	OwnerUserID      string            `dynamodbav:"owner_user_id"`
	AmountMinorUnits int64             `dynamodbav:"amount_minor_units"`
	Currency         string            `dynamodbav:"currency"`
	Metadata         map[string]string `dynamodbav:"metadata"`
	Status           string            `dynamodbav:"status"`
	CreatedAt        string            `dynamodbav:"created_at"`
	CleanupAfter     int64             `dynamodbav:"cleanup_after,omitempty"`
	ExpiresAt        int64             `dynamodbav:"expires_at"`
}

// PendingPaymentDynamoRepository persists payment staging records.
//
// Table requirements:
//   - PK: id (string)
//   - TTL (optional): expires_at
type PendingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingPaymentRepository = (*PendingPaymentDynamoRepository)(nil)

func NewPendingPaymentDynamoRepository(ddb *dynamodb.Client) *PendingPaymentDynamoRepository {
	return &PendingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: pendingPaymentsTable(),
	}
}

func (r *PendingPaymentDynamoRepository) Create(ctx context.Context, p entities.PendingPayment) error {
	av, err := attributevalue.MarshalMap(toPendingPaymentItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

func (r *PendingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PendingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingPayment{}, nil
	}

	var it pendingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingPayment{}, err
	}
	return fromPendingPaymentItem(it), nil
}

func (r *PendingPaymentDynamoRepository) ScheduleCleanup(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		UpdateExpression:    aws.String("SET cleanup_after = :at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberN{Value: unixString(at)},
		},
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	return err
}

func (r *PendingPaymentDynamoRepository) ListSweepable(ctx context.Context, now time.Time) ([]entities.PendingPayment, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("(attribute_exists(cleanup_after) AND cleanup_after <= :now) OR expires_at <= :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: unixString(now)},
		},
	})

	var due []entities.PendingPayment
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it pendingPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			due = append(due, fromPendingPaymentItem(it))
		}
	}
	return due, nil
}

func (r *PendingPaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	return err
}

func unixString(t time.Time) string {
	return int64String(t.Unix())
}

func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func toPendingPaymentItem(p entities.PendingPayment) pendingPaymentItem {
	return pendingPaymentItem{
		ID:               p.ID,
		PurchaseType:     string(p.PurchaseType),
		OwnerUserID:      p.OwnerUserID,
		AmountMinorUnits: p.AmountMinorUnits,
		Currency:         p.Currency,
		Metadata:         p.Metadata,
		Status:           string(p.Status),
		CreatedAt:        formatTime(p.CreatedAt),
		CleanupAfter:     toUnix(p.CleanupAfter),
		ExpiresAt:        toUnix(p.ExpiresAt),
	}
}

func fromPendingPaymentItem(it pendingPaymentItem) entities.PendingPayment {
	return entities.PendingPayment{
		ID:               it.ID,
		PurchaseType:     entities.PurchaseType(it.PurchaseType),
		OwnerUserID:      it.OwnerUserID,
		AmountMinorUnits: it.AmountMinorUnits,
		Currency:         it.Currency,
		Metadata:         it.Metadata,
		Status:           entities.PendingPaymentStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		CleanupAfter:     fromUnix(it.CleanupAfter),
		ExpiresAt:        fromUnix(it.ExpiresAt),
	}
}

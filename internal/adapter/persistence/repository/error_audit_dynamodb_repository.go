package repository

import (
	"context"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPaymentErrorsTableName = "payment_errors"

type settlementErrorItem struct {
	ID                 string `dynamodbav:"id"`
	EventID            string `dynamodbav:"event_id"`
	PurchaseType       string `dynamodbav:"purchase_type"`
	ReferenceID        string `dynamodbav:"reference_id"`
	PaymentReferenceID string `dynamodbav:"payment_reference_id"`
	Error              string `dynamodbav:"error"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// ErrorAuditDynamoRepository keeps failed settlements for manual reconciliation.
type ErrorAuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IErrorAuditRepository = (*ErrorAuditDynamoRepository)(nil)

func NewErrorAuditDynamoRepository(ddb *dynamodb.Client) *ErrorAuditDynamoRepository {
	return &ErrorAuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_ERRORS_TABLE", defaultPaymentErrorsTableName),
	}
}

func (r *ErrorAuditDynamoRepository) Record(ctx context.Context, e entities.SettlementError) error {
	av, err := attributevalue.MarshalMap(settlementErrorItem{
		ID:                 e.ID,
		EventID:            e.EventID,
		PurchaseType:       string(e.PurchaseType),
		ReferenceID:        e.ReferenceID,
		PaymentReferenceID: e.PaymentReferenceID,
		Error:              e.Error,
		CreatedAt:          formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

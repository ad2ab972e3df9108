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

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID                 string                `dynamodbav:"id"`
	BuyerID            string                `dynamodbav:"buyer_id"`
	MerchantID         string                `dynamodbav:"merchant_id,omitempty"`
	ServiceID          string                `dynamodbav:"service_id"`
	ServiceName        string                `dynamodbav:"service_name,omitempty"`
	StartTime          string                `dynamodbav:"start_time"`
	EndTime            string                `dynamodbav:"end_time"`
	DurationMinutes    int                   `dynamodbav:"duration_minutes"`
	OriginalPrice      attributevalue.Number `dynamodbav:"original_price"`
	DiscountAmount     attributevalue.Number `dynamodbav:"discount_amount"`
	FinalPrice         attributevalue.Number `dynamodbav:"final_price"`
	PromoCodeID        string                `dynamodbav:"promo_code_id,omitempty"`
	Status             string                `dynamodbav:"status"`
	PaymentReferenceID string                `dynamodbav:"payment_reference_id"`
	CreatedAt          string                `dynamodbav:"created_at"`
}

// BookingDynamoRepository writes paid service bookings.
//
// Table requirements:
//   - PK: id (string, allocated when the payment is initiated)
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) CommitBooking(ctx context.Context, s entities.BookingSettlement) error {
	items, itemErrs, err := r.bookingWrites(s)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactionError(err, itemErrs)
	}
	return nil
}

func (r *BookingDynamoRepository) bookingWrites(s entities.BookingSettlement) ([]types.TransactWriteItem, []error, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(s.Booking))
	if err != nil {
		return nil, nil, err
	}
	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	itemErrs := []error{interfaces.ErrAlreadyExists}
	if s.PendingPaymentID != "" {
		items = append(items, consumePendingPayment(s.PendingPaymentID))
		itemErrs = append(itemErrs, interfaces.ErrPendingPaymentConsumed)
	}
	return items, itemErrs, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                 b.ID,
		BuyerID:            b.BuyerID,
		MerchantID:         b.MerchantID,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		StartTime:          formatTime(b.StartTime),
		EndTime:            formatTime(b.EndTime),
		DurationMinutes:    b.DurationMinutes,
		OriginalPrice:      toNumber(b.OriginalPrice),
		DiscountAmount:     toNumber(b.DiscountAmount),
		FinalPrice:         toNumber(b.FinalPrice),
		PromoCodeID:        b.PromoCodeID,
		Status:             string(b.Status),
		PaymentReferenceID: b.PaymentReferenceID,
		CreatedAt:          formatTime(b.CreatedAt),
	}
}

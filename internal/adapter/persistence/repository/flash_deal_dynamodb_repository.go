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

const (
	defaultPostsTableName        = "posts"
	defaultReservationsTableName = "reservations"
)

type flashDealItem struct {
	ID            string                `dynamodbav:"id"`
	CompanyID     string                `dynamodbav:"company_id"`
	CompanyName   string                `dynamodbav:"company_name"`
	BasketType    string                `dynamodbav:"basket_type"`
	Price         attributevalue.Number `dynamodbav:"price"`
	PickupStart   string                `dynamodbav:"pickup_start"`
	PickupEnd     string                `dynamodbav:"pickup_end"`
	PickupAddress string                `dynamodbav:"pickup_address"`
	BasketCount   int64                 `dynamodbav:"basket_count"`
}

type reservationItem struct {
	ID                 string                `dynamodbav:"id"`
	BuyerID            string                `dynamodbav:"buyer_id"`
	PostID             string                `dynamodbav:"post_id"`
	CompanyID          string                `dynamodbav:"company_id"`
	CompanyName        string                `dynamodbav:"company_name"`
	BasketType         string                `dynamodbav:"basket_type"`
	Price              attributevalue.Number `dynamodbav:"price"`
	Quantity           int64                 `dynamodbav:"quantity"`
	PickupStart        string                `dynamodbav:"pickup_start"`
	PickupEnd          string                `dynamodbav:"pickup_end"`
	PickupAddress      string                `dynamodbav:"pickup_address"`
	ValidationCode     string                `dynamodbav:"validation_code"`
	IsValidated        bool                  `dynamodbav:"is_validated"`
	Status             string                `dynamodbav:"status"`
	PaymentReferenceID string                `dynamodbav:"payment_reference_id"`
	CreatedAt          string                `dynamodbav:"created_at"`
}

// FlashDealDynamoRepository reads flash-deal posts and writes reservations.
//
// Table requirements (all PK: id string):
//   - posts, reservations
type FlashDealDynamoRepository struct {
	ddb          *dynamodb.Client
	posts        string
	reservations string
}

var _ interfaces.IFlashDealRepository = (*FlashDealDynamoRepository)(nil)

func NewFlashDealDynamoRepository(ddb *dynamodb.Client) *FlashDealDynamoRepository {
	return &FlashDealDynamoRepository{
		ddb:          ddb,
		posts:        getenvDefault("POSTS_TABLE", defaultPostsTableName),
		reservations: getenvDefault("RESERVATIONS_TABLE", defaultReservationsTableName),
	}
}

func (r *FlashDealDynamoRepository) GetFlashDeal(ctx context.Context, postID string) (entities.FlashDeal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.posts),
		Key:            stringKey(postID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FlashDeal{}, err
	}
	if len(out.Item) == 0 {
		return entities.FlashDeal{}, nil
	}

	var it flashDealItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FlashDeal{}, err
	}
	return entities.FlashDeal{
		ID:            it.ID,
		CompanyID:     it.CompanyID,
		CompanyName:   it.CompanyName,
		BasketType:    it.BasketType,
		Price:         fromNumber(it.Price),
		PickupStart:   parseTime(it.PickupStart),
		PickupEnd:     parseTime(it.PickupEnd),
		PickupAddress: it.PickupAddress,
		BasketCount:   it.BasketCount,
	}, nil
}

// CommitReservation creates the reservation, decrements basket_count by the
// reserved quantity and consumes the pending payment.
func (r *FlashDealDynamoRepository) CommitReservation(ctx context.Context, s entities.ReservationSettlement) error {
	items, itemErrs, err := r.reservationWrites(s)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactionError(err, itemErrs)
	}
	return nil
}

func (r *FlashDealDynamoRepository) reservationWrites(s entities.ReservationSettlement) ([]types.TransactWriteItem, []error, error) {
	res := s.Reservation
	av, err := attributevalue.MarshalMap(toReservationItem(res))
	if err != nil {
		return nil, nil, err
	}
	qty := res.Quantity
	if qty <= 0 {
		qty = 1
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.reservations),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		{Update: &types.Update{
			TableName:                aws.String(r.posts),
			Key:                      stringKey(res.PostID),
			UpdateExpression:         aws.String("ADD basket_count :delta"),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta": &types.AttributeValueMemberN{Value: int64String(-qty)},
			},
		}},
	}
	itemErrs := []error{interfaces.ErrAlreadyExists, interfaces.ErrPreconditionFailed}
	if s.PendingPaymentID != "" {
		items = append(items, consumePendingPayment(s.PendingPaymentID))
		itemErrs = append(itemErrs, interfaces.ErrPendingPaymentConsumed)
	}
	return items, itemErrs, nil
}

func toReservationItem(res entities.Reservation) reservationItem {
	return reservationItem{
		ID:                 res.ID,
		BuyerID:            res.BuyerID,
		PostID:             res.PostID,
		CompanyID:          res.CompanyID,
		CompanyName:        res.CompanyName,
		BasketType:         res.BasketType,
		Price:              toNumber(res.Price),
		Quantity:           res.Quantity,
		PickupStart:        formatTime(res.PickupStart),
		PickupEnd:          formatTime(res.PickupEnd),
		PickupAddress:      res.PickupAddress,
		ValidationCode:     res.ValidationCode,
		IsValidated:        res.IsValidated,
		Status:             string(res.Status),
		PaymentReferenceID: res.PaymentReferenceID,
		CreatedAt:          formatTime(res.CreatedAt),
	}
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	batchWriteLimit    = 25
	maxBatchWriteTries = 5
)

const (
	defaultLoyaltyProgramsTableName = "loyalty_programs"
	defaultLoyaltyCardsTableName    = "loyalty_cards"
	defaultLoyaltyHistoryTableName  = "loyalty_history"
	defaultPromoCodesTableName      = "promo_codes"
	loyaltyCardsCustomerIndex       = "customer_merchant-index"
)

type loyaltyTierItem struct {
	Threshold    int64                 `dynamodbav:"threshold"`
	RewardValue  attributevalue.Number `dynamodbav:"reward_value"`
	IsPercentage bool                  `dynamodbav:"is_percentage"`
}

type loyaltyProgramItem struct {
	ID           string                `dynamodbav:"id"`
	MerchantID   string                `dynamodbav:"merchant_id"`
	Type         string                `dynamodbav:"type"`
	TargetValue  int64                 `dynamodbav:"target_value"`
	Tiers        []loyaltyTierItem     `dynamodbav:"tiers,omitempty"`
	RewardValue  attributevalue.Number `dynamodbav:"reward_value"`
	IsPercentage bool                  `dynamodbav:"is_percentage"`
	Status       string                `dynamodbav:"status"`
}

// customer_merchant is the GSI key "<customer>#<merchant>".
type loyaltyCardItem struct {
	ID               string  `dynamodbav:"id"`
	CustomerMerchant string  `dynamodbav:"customer_merchant"`
	CustomerID       string  `dynamodbav:"customer_id"`
	MerchantID       string  `dynamodbav:"merchant_id"`
	ProgramID        string  `dynamodbav:"program_id"`
	CurrentValue     int64   `dynamodbav:"current_value"`
	TargetValue      int64   `dynamodbav:"target_value"`
	ReachedTiers     []int64 `dynamodbav:"reached_tiers,omitempty"`
	TotalEarned      int64   `dynamodbav:"total_earned"`
	TotalRedeemed    int64   `dynamodbav:"total_redeemed"`
	Status           string  `dynamodbav:"status"`
	LastTransaction  string  `dynamodbav:"last_transaction"`
	CreatedAt        string  `dynamodbav:"created_at"`
	Version          int64   `dynamodbav:"version"`
}

type loyaltyHistoryDetailItem struct {
	CardID      string `dynamodbav:"card_id"`
	Action      string `dynamodbav:"action"`
	ValueAdded  int64  `dynamodbav:"value_added"`
	ValueAfter  int64  `dynamodbav:"value_after"`
	PromoCodeID string `dynamodbav:"promo_code_id,omitempty"`
}

type loyaltyHistoryItem struct {
	ID          string                     `dynamodbav:"id"`
	CustomerID  string                     `dynamodbav:"customer_id"`
	MerchantID  string                     `dynamodbav:"merchant_id"`
	ProgramID   string                     `dynamodbav:"program_id"`
	OrderID     string                     `dynamodbav:"order_id"`
	EarnedValue int64                      `dynamodbav:"earned_value"`
	Details     []loyaltyHistoryDetailItem `dynamodbav:"details"`
	CreatedAt   string                     `dynamodbav:"created_at"`
}

type promoCodeItem struct {
	ID            string                `dynamodbav:"id"`
	Code          string                `dynamodbav:"code"`
	CustomerID    string                `dynamodbav:"customer_id"`
	MerchantID    string                `dynamodbav:"merchant_id"`
	DiscountValue attributevalue.Number `dynamodbav:"discount_value"`
	IsPercentage  bool                  `dynamodbav:"is_percentage"`
	MaxUses       int64                 `dynamodbav:"max_uses"`
	UsageCount    int64                 `dynamodbav:"usage_count"`
	UsedBy        []string              `dynamodbav:"used_by,omitempty"`
	Status        string                `dynamodbav:"status"`
	LoyaltyCardID string                `dynamodbav:"loyalty_card_id,omitempty"`
	ExpiresAt     int64                 `dynamodbav:"expires_at,omitempty"` // unix seconds
	CreatedAt     string                `dynamodbav:"created_at"`
}

type loyaltyTables struct {
	programs   string
	cards      string
	history    string
	promoCodes string
}

func loadLoyaltyTables() loyaltyTables {
	return loyaltyTables{
		programs:   getenvDefault("LOYALTY_PROGRAMS_TABLE", defaultLoyaltyProgramsTableName),
		cards:      getenvDefault("LOYALTY_CARDS_TABLE", defaultLoyaltyCardsTableName),
		history:    getenvDefault("LOYALTY_HISTORY_TABLE", defaultLoyaltyHistoryTableName),
		promoCodes: getenvDefault("PROMO_CODES_TABLE", defaultPromoCodesTableName),
	}
}

// LoyaltyDynamoRepository reads programs and cards and redeems promo codes.
// Card and promo code creation happens inside the merchant ledger transaction,
// except for rewards that overflow it (SaveRewards).
//
// Table requirements:
//   - loyalty_programs, loyalty_history, promo_codes: PK id (string)
//   - loyalty_cards: PK id (string), GSI customer_merchant-index (PK: customer_merchant)
type LoyaltyDynamoRepository struct {
	ddb    *dynamodb.Client
	tables loyaltyTables
}

var _ interfaces.ILoyaltyRepository = (*LoyaltyDynamoRepository)(nil)

func NewLoyaltyDynamoRepository(ddb *dynamodb.Client) *LoyaltyDynamoRepository {
	return &LoyaltyDynamoRepository{ddb: ddb, tables: loadLoyaltyTables()}
}

func (r *LoyaltyDynamoRepository) GetProgram(ctx context.Context, id string) (entities.LoyaltyProgram, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.programs),
		Key:       stringKey(id),
	})
	if err != nil {
		return entities.LoyaltyProgram{}, err
	}
	if len(out.Item) == 0 {
		return entities.LoyaltyProgram{}, nil
	}

	var it loyaltyProgramItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LoyaltyProgram{}, err
	}
	return fromLoyaltyProgramItem(it), nil
}

// GetActiveCard queries the GSI, then re-reads the card consistently so the
// version used for the conditional write is current.
func (r *LoyaltyDynamoRepository) GetActiveCard(ctx context.Context, customerID, merchantID string) (entities.LoyaltyCard, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.cards),
		IndexName:              aws.String(loyaltyCardsCustomerIndex),
		KeyConditionExpression: aws.String("customer_merchant = :cm"),
		FilterExpression:       aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cm":     &types.AttributeValueMemberS{Value: customerMerchantKey(customerID, merchantID)},
			":active": &types.AttributeValueMemberS{Value: string(entities.LoyaltyCardActive)},
		},
	})
	if err != nil {
		return entities.LoyaltyCard{}, err
	}
	if len(out.Items) == 0 {
		return entities.LoyaltyCard{}, nil
	}

	var indexed loyaltyCardItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &indexed); err != nil {
		return entities.LoyaltyCard{}, err
	}
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.cards),
		Key:            stringKey(indexed.ID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LoyaltyCard{}, err
	}
	if len(res.Item) == 0 {
		return entities.LoyaltyCard{}, nil
	}
	var it loyaltyCardItem
	if err := attributevalue.UnmarshalMap(res.Item, &it); err != nil {
		return entities.LoyaltyCard{}, err
	}
	// The index lags; a card completed meanwhile no longer counts as active.
	if it.Status != string(entities.LoyaltyCardActive) {
		return entities.LoyaltyCard{}, nil
	}
	return fromLoyaltyCardItem(it), nil
}

func (r *LoyaltyDynamoRepository) RedeemPromoCode(ctx context.Context, promoCodeID, userID string, now time.Time) error {
	out, err := r.ddb.UpdateItem(ctx, r.tables.redeemPromoCode(promoCodeID, userID, now))
	if isConditionalCheckFailed(err) {
		return interfaces.ErrPreconditionFailed
	}
	if err != nil {
		return err
	}

	var it promoCodeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return err
	}
	if it.MaxUses <= 0 || it.UsageCount < it.MaxUses {
		return nil
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tables.promoCodes),
		Key:                      stringKey(promoCodeID),
		UpdateExpression:         aws.String("SET #status = :used"),
		ConditionExpression:      aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used":   &types.AttributeValueMemberS{Value: string(entities.PromoCodeUsed)},
			":active": &types.AttributeValueMemberS{Value: string(entities.PromoCodeActive)},
		},
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	return err
}

// redeemPromoCode only succeeds for an active code owned by the user (or
// unowned) that has not expired and still has uses left.
func (t loyaltyTables) redeemPromoCode(promoCodeID, userID string, now time.Time) *dynamodb.UpdateItemInput {
	cond := []string{
		"attribute_exists(#id)",
		"#status = :active",
		"(attribute_not_exists(#customer) OR #customer = :userId)",
		"(attribute_not_exists(#expires) OR #expires > :now)",
		"(attribute_not_exists(#max) OR #max <= :zero OR attribute_not_exists(#usage) OR #usage < #max)",
	}
	return &dynamodb.UpdateItemInput{
		TableName:           aws.String(t.promoCodes),
		Key:                 stringKey(promoCodeID),
		UpdateExpression:    aws.String("ADD #usage :one SET #usedBy = list_append(if_not_exists(#usedBy, :empty), :user)"),
		ConditionExpression: aws.String(strings.Join(cond, " AND ")),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#status":   "status",
			"#customer": "customer_id",
			"#expires":  "expires_at",
			"#max":      "max_uses",
			"#usage":    "usage_count",
			"#usedBy":   "used_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.PromoCodeActive)},
			":userId": &types.AttributeValueMemberS{Value: userID},
			":now":    &types.AttributeValueMemberN{Value: int64String(now.Unix())},
			":zero":   &types.AttributeValueMemberN{Value: "0"},
			":one":    &types.AttributeValueMemberN{Value: "1"},
			":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":user": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: userID},
			}},
		},
		ReturnValues: types.ReturnValueAllNew,
	}
}

// SaveRewards writes the cards and codes with BatchWriteItem, 25 at a time,
// resubmitting unprocessed items a bounded number of times.
func (r *LoyaltyDynamoRepository) SaveRewards(ctx context.Context, cards []entities.LoyaltyCard, promoCodes []entities.PromoCode) error {
	requests, err := r.tables.rewardRequests(cards, promoCodes)
	if err != nil {
		return err
	}
	for start := 0; start < len(requests); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(requests) {
			end = len(requests)
		}
		if err := r.batchWrite(ctx, requests[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *LoyaltyDynamoRepository) batchWrite(ctx context.Context, requests []rewardRequest) error {
	pending := map[string][]types.WriteRequest{}
	for _, req := range requests {
		pending[req.table] = append(pending[req.table], req.write)
	}
	for try := 1; len(pending) > 0; try++ {
		if try > maxBatchWriteTries {
			return fmt.Errorf("batch write: unprocessed items after %d tries", maxBatchWriteTries)
		}
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
		if len(pending) > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(try) * 50 * time.Millisecond):
			}
		}
	}
	return nil
}

type rewardRequest struct {
	table string
	write types.WriteRequest
}

func (t loyaltyTables) rewardRequests(cards []entities.LoyaltyCard, promoCodes []entities.PromoCode) ([]rewardRequest, error) {
	out := make([]rewardRequest, 0, len(cards)+len(promoCodes))
	for _, card := range cards {
		card.Version++
		av, err := attributevalue.MarshalMap(toLoyaltyCardItem(card))
		if err != nil {
			return nil, err
		}
		out = append(out, rewardRequest{table: t.cards, write: types.WriteRequest{PutRequest: &types.PutRequest{Item: av}}})
	}
	for _, promo := range promoCodes {
		av, err := attributevalue.MarshalMap(toPromoCodeItem(promo))
		if err != nil {
			return nil, err
		}
		out = append(out, rewardRequest{table: t.promoCodes, write: types.WriteRequest{PutRequest: &types.PutRequest{Item: av}}})
	}
	return out, nil
}

func customerMerchantKey(customerID, merchantID string) string {
	return customerID + "#" + merchantID
}

// loyaltyWrites builds the transaction items of one distribution. New cards
// must not exist; existing cards must still carry the version they were read at.
func (t loyaltyTables) loyaltyWrites(outcome *entities.LoyaltyOutcome) ([]types.TransactWriteItem, []error, error) {
	if outcome == nil {
		return nil, nil, nil
	}
	var items []types.TransactWriteItem
	var itemErrs []error

	for _, card := range outcome.Cards {
		put := &types.Put{
			TableName:                aws.String(t.cards),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}
		if card.IsNew() {
			put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		} else {
			put.ConditionExpression = aws.String("#version = :read")
			put.ExpressionAttributeNames = map[string]string{"#version": "version"}
			put.ExpressionAttributeValues = map[string]types.AttributeValue{
				":read": &types.AttributeValueMemberN{Value: int64String(card.Version)},
			}
		}
		card.Version++
		av, err := attributevalue.MarshalMap(toLoyaltyCardItem(card))
		if err != nil {
			return nil, nil, err
		}
		put.Item = av
		items = append(items, types.TransactWriteItem{Put: put})
		itemErrs = append(itemErrs, interfaces.ErrVersionConflict)
	}

	for _, promo := range outcome.PromoCodes {
		av, err := attributevalue.MarshalMap(toPromoCodeItem(promo))
		if err != nil {
			return nil, nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(t.promoCodes),
			Item:      av,
		}})
		itemErrs = append(itemErrs, nil)
	}

	if outcome.History.ID != "" {
		av, err := attributevalue.MarshalMap(toLoyaltyHistoryItem(outcome.History))
		if err != nil {
			return nil, nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(t.history),
			Item:      av,
		}})
		itemErrs = append(itemErrs, nil)
	}
	return items, itemErrs, nil
}

func fromLoyaltyProgramItem(it loyaltyProgramItem) entities.LoyaltyProgram {
	tiers := make([]entities.LoyaltyTier, 0, len(it.Tiers))
	for _, t := range it.Tiers {
		tiers = append(tiers, entities.LoyaltyTier{
			Threshold:    t.Threshold,
			RewardValue:  fromNumber(t.RewardValue),
			IsPercentage: t.IsPercentage,
		})
	}
	return entities.LoyaltyProgram{
		ID:           it.ID,
		MerchantID:   it.MerchantID,
		Type:         entities.LoyaltyProgramType(it.Type),
		TargetValue:  it.TargetValue,
		Tiers:        tiers,
		RewardValue:  fromNumber(it.RewardValue),
		IsPercentage: it.IsPercentage,
		Status:       entities.LoyaltyProgramStatus(it.Status),
	}
}

func toLoyaltyCardItem(c entities.LoyaltyCard) loyaltyCardItem {
	return loyaltyCardItem{
		ID:               c.ID,
		CustomerMerchant: customerMerchantKey(c.CustomerID, c.MerchantID),
		CustomerID:       c.CustomerID,
		MerchantID:       c.MerchantID,
		ProgramID:        c.ProgramID,
		CurrentValue:     c.CurrentValue,
		TargetValue:      c.TargetValue,
		ReachedTiers:     c.ReachedTiers,
		TotalEarned:      c.TotalEarned,
		TotalRedeemed:    c.TotalRedeemed,
		Status:           string(c.Status),
		LastTransaction:  formatTime(c.LastTransaction),
		CreatedAt:        formatTime(c.CreatedAt),
		Version:          c.Version,
	}
}

func fromLoyaltyCardItem(it loyaltyCardItem) entities.LoyaltyCard {
	return entities.LoyaltyCard{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		MerchantID:      it.MerchantID,
		ProgramID:       it.ProgramID,
		CurrentValue:    it.CurrentValue,
		TargetValue:     it.TargetValue,
		ReachedTiers:    it.ReachedTiers,
		TotalEarned:     it.TotalEarned,
		TotalRedeemed:   it.TotalRedeemed,
		Status:          entities.LoyaltyCardStatus(it.Status),
		LastTransaction: parseTime(it.LastTransaction),
		CreatedAt:       parseTime(it.CreatedAt),
		Version:         it.Version,
	}
}

func toPromoCodeItem(p entities.PromoCode) promoCodeItem {
	return promoCodeItem{
		ID:            p.ID,
		Code:          p.Code,
		CustomerID:    p.CustomerID,
		MerchantID:    p.MerchantID,
		DiscountValue: toNumber(p.DiscountValue),
		IsPercentage:  p.IsPercentage,
		MaxUses:       p.MaxUses,
		UsageCount:    p.UsageCount,
		UsedBy:        p.UsedBy,
		Status:        string(p.Status),
		LoyaltyCardID: p.LoyaltyCardID,
		ExpiresAt:     unixSeconds(p.ExpiresAt),
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func toLoyaltyHistoryItem(h entities.LoyaltyHistory) loyaltyHistoryItem {
	details := make([]loyaltyHistoryDetailItem, 0, len(h.Details))
	for _, d := range h.Details {
		details = append(details, loyaltyHistoryDetailItem{
			CardID:      d.CardID,
			Action:      string(d.Action),
			ValueAdded:  d.ValueAdded,
			ValueAfter:  d.ValueAfter,
			PromoCodeID: d.PromoCodeID,
		})
	}
	return loyaltyHistoryItem{
		ID:          h.ID,
		CustomerID:  h.CustomerID,
		MerchantID:  h.MerchantID,
		ProgramID:   h.ProgramID,
		OrderID:     h.OrderID,
		EarnedValue: h.EarnedValue,
		Details:     details,
		CreatedAt:   formatTime(h.CreatedAt),
	}
}

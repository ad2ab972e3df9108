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
	defaultMerchantsTableName    = "merchants"
	defaultTransactionsTableName = "transactions"
	defaultPayoutsTableName      = "payouts"
)

type merchantItem struct {
	ID                       string                `dynamodbav:"id"`
	Name                     string                `dynamodbav:"name"`
	Email                    string                `dynamodbav:"email,omitempty"`
	AvailableBalance         attributevalue.Number `dynamodbav:"available_balance"`
	TotalGain                attributevalue.Number `dynamodbav:"total_gain"`
	TotalFees                attributevalue.Number `dynamodbav:"total_fees"`
	ConnectedPayoutAccountID string                `dynamodbav:"connected_payout_account_id,omitempty"`
	LoyaltyProgramID         string                `dynamodbav:"loyalty_program_id,omitempty"`
}

type ledgerEntryItem struct {
	ID             string                `dynamodbav:"id"`
	MerchantID     string                `dynamodbav:"merchant_id"`
	PurchaseID     string                `dynamodbav:"purchase_id"`
	TotalAmount    attributevalue.Number `dynamodbav:"total_amount"`
	FeeAmount      attributevalue.Number `dynamodbav:"fee_amount"`
	AmountAfterFee attributevalue.Number `dynamodbav:"amount_after_fee"`
	Type           string                `dynamodbav:"type"`
	Status         string                `dynamodbav:"status"`
	CreatedAt      string                `dynamodbav:"created_at"`
}

type payoutItem struct {
	ID         string                `dynamodbav:"id"`
	MerchantID string                `dynamodbav:"merchant_id"`
	Amount     attributevalue.Number `dynamodbav:"amount"`
	Status     string                `dynamodbav:"status"`
	TransferID string                `dynamodbav:"transfer_id"`
	CreatedAt  string                `dynamodbav:"created_at"`
}

// MerchantDynamoRepository owns merchant counters, ledger entries and payouts.
//
// Table requirements (all PK: id string):
//   - merchants, transactions, payouts, plus the loyalty tables for credits
type MerchantDynamoRepository struct {
	ddb          *dynamodb.Client
	merchants    string
	transactions string
	payouts      string
	loyalty      loyaltyTables
}

var _ interfaces.IMerchantRepository = (*MerchantDynamoRepository)(nil)

func NewMerchantDynamoRepository(ddb *dynamodb.Client) *MerchantDynamoRepository {
	return &MerchantDynamoRepository{
		ddb:          ddb,
		merchants:    getenvDefault("MERCHANTS_TABLE", defaultMerchantsTableName),
		transactions: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
		payouts:      getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
		loyalty:      loadLoyaltyTables(),
	}
}

func (r *MerchantDynamoRepository) GetByID(ctx context.Context, id string) (entities.MerchantAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.merchants),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MerchantAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.MerchantAccount{}, nil
	}

	var it merchantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MerchantAccount{}, err
	}
	return entities.MerchantAccount{
		ID:                       it.ID,
		Name:                     it.Name,
		Email:                    it.Email,
		AvailableBalance:         fromNumber(it.AvailableBalance),
		TotalGain:                fromNumber(it.TotalGain),
		TotalFees:                fromNumber(it.TotalFees),
		ConnectedPayoutAccountID: it.ConnectedPayoutAccountID,
		LoyaltyProgramID:         it.LoyaltyProgramID,
	}, nil
}

// CommitCredit writes, in order: the merchant counters, the ledger entry and
// the loyalty items.
func (r *MerchantDynamoRepository) CommitCredit(ctx context.Context, credit entities.LedgerCredit) error {
	entry := credit.Entry
	entryAV, err := attributevalue.MarshalMap(ledgerEntryItem{
		ID:             entry.ID,
		MerchantID:     entry.MerchantID,
		PurchaseID:     entry.PurchaseID,
		TotalAmount:    toNumber(entry.TotalAmount),
		FeeAmount:      toNumber(entry.FeeAmount),
		AmountAfterFee: toNumber(entry.AmountAfterFee),
		Type:           string(entry.Type),
		Status:         string(entry.Status),
		CreatedAt:      formatTime(entry.CreatedAt),
	})
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:                aws.String(r.merchants),
			Key:                      stringKey(entry.MerchantID),
			UpdateExpression:         aws.String("ADD total_gain :total, total_fees :fee, available_balance :net"),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":total": numberValue(entry.TotalAmount),
				":fee":   numberValue(entry.FeeAmount),
				":net":   numberValue(entry.AmountAfterFee),
			},
		}},
		{Put: &types.Put{
			TableName:                aws.String(r.transactions),
			Item:                     entryAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	itemErrs := []error{interfaces.ErrPreconditionFailed, interfaces.ErrAlreadyExists}

	loyaltyItems, loyaltyErrs, err := r.loyalty.loyaltyWrites(credit.Loyalty)
	if err != nil {
		return err
	}
	items = append(items, loyaltyItems...)
	itemErrs = append(itemErrs, loyaltyErrs...)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactionError(err, itemErrs)
	}
	return nil
}

// CommitPayout debits available_balance, which must cover the amount, and
// records the payout.
func (r *MerchantDynamoRepository) CommitPayout(ctx context.Context, payout entities.Payout) error {
	av, err := attributevalue.MarshalMap(payoutItem{
		ID:         payout.ID,
		MerchantID: payout.MerchantID,
		Amount:     toNumber(payout.Amount),
		Status:     string(payout.Status),
		TransferID: payout.TransferID,
		CreatedAt:  formatTime(payout.CreatedAt),
	})
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:           aws.String(r.merchants),
			Key:                 stringKey(payout.MerchantID),
			UpdateExpression:    aws.String("ADD available_balance :debit"),
			ConditionExpression: aws.String("available_balance >= :amount"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":debit":  numberValue(payout.Amount.Neg()),
				":amount": numberValue(payout.Amount),
			},
		}},
		{Put: &types.Put{
			TableName:                aws.String(r.payouts),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactionError(err, []error{interfaces.ErrPreconditionFailed, interfaces.ErrAlreadyExists})
	}
	return nil
}

// SetConnectedPayoutAccount stores the connected account once. Setting the
// same id again succeeds; any other existing id fails the condition.
func (r *MerchantDynamoRepository) SetConnectedPayoutAccount(ctx context.Context, merchantID, accountID string) error {
	_, err := r.ddb.UpdateItem(ctx, r.connectedAccountUpdate(merchantID, accountID))
	if isConditionalCheckFailed(err) {
		return interfaces.ErrPreconditionFailed
	}
	return err
}

func (r *MerchantDynamoRepository) connectedAccountUpdate(merchantID, accountID string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.merchants),
		Key:                 stringKey(merchantID),
		UpdateExpression:    aws.String("SET #account = :account"),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#account) OR #account = :account)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#account": "connected_payout_account_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account": &types.AttributeValueMemberS{Value: accountID},
		},
	}
}

package repository

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
)

const (
	defaultPendingPaymentsTableName = "pending_payments"
	conditionalCheckFailed          = "ConditionalCheckFailed"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func pendingPaymentsTable() string {
	return getenvDefault("PENDING_PAYMENTS_TABLE", defaultPendingPaymentsTableName)
}

// Money is stored as a DynamoDB number so ADD works on balances and counters.
func toNumber(d decimal.Decimal) attributevalue.Number {
	return attributevalue.Number(d.String())
}

func fromNumber(n attributevalue.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, _ := decimal.NewFromString(string(n))
	return d
}

func numberValue(d decimal.Decimal) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: d.String()}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func unixSeconds(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func stringKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// failedConditions returns the indexes of transaction items whose condition
// check failed. ok is false when err is not a cancelled transaction.
func failedConditions(err error) (idx []int, ok bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == conditionalCheckFailed {
			idx = append(idx, i)
		}
	}
	return idx, true
}

// mapTransactionError translates the first failed condition using the
// per-item error table. Unmapped cancellations are returned unchanged.
func mapTransactionError(err error, itemErrs []error) error {
	idx, ok := failedConditions(err)
	if !ok {
		return err
	}
	for _, i := range idx {
		if i < len(itemErrs) && itemErrs[i] != nil {
			return itemErrs[i]
		}
	}
	return err
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// consumePendingPayment flips a pending payment to consumed inside a
// settlement transaction.
func consumePendingPayment(id string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(pendingPaymentsTable()),
			Key:                 stringKey(id),
			UpdateExpression:    aws.String("SET #status = :consumed"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":consumed": &types.AttributeValueMemberS{Value: string(entities.PendingPaymentStatusConsumed)},
				":pending":  &types.AttributeValueMemberS{Value: string(entities.PendingPaymentStatusPending)},
			},
		},
	}
}

func int64String(n int64) string {
	return strconv.FormatInt(n, 10)
}

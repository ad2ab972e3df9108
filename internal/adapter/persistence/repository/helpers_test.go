package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestMapTransactionError(t *testing.T) {
	table := []error{interfaces.ErrPendingPaymentConsumed, interfaces.ErrPreconditionFailed, interfaces.ErrVersionConflict}
	plain := errors.New("throttled")

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"not a transaction error", plain, plain},
		{"first failing item wins", cancelled("None", "ConditionalCheckFailed", "ConditionalCheckFailed"), interfaces.ErrPreconditionFailed},
		{"product version", cancelled("None", "None", "ConditionalCheckFailed"), interfaces.ErrVersionConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapTransactionError(tc.err, table); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	t.Run("unmapped item keeps original error", func(t *testing.T) {
		err := cancelled("ConditionalCheckFailed")
		if got := mapTransactionError(err, []error{nil}); got != err {
			t.Fatalf("expected original error, got %v", got)
		}
	})
}

func TestOrderItemRoundTrip(t *testing.T) {
	completed := time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:         "o1",
		TotalPrice: decimal.RequireFromString("24.90"),
		Items:      []entities.LineItem{{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("12.45")}},
		Status:     entities.OrderStatusCompleted,
		CreatedAt:  completed.Add(-time.Hour),
	}
	order.CompletedAt = &completed

	got := fromOrderItem(toOrderItem(order))
	if !got.TotalPrice.Equal(order.TotalPrice) || !got.Items[0].UnitPrice.Equal(decimal.RequireFromString("12.45")) {
		t.Fatalf("money did not survive storage: %+v", got)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completed) {
		t.Fatalf("expected completed_at %v, got %v", completed, got.CompletedAt)
	}
}

func TestLoyaltyWrites(t *testing.T) {
	tables := loyaltyTables{programs: "p", cards: "c", history: "h", promoCodes: "pc"}
	outcome := &entities.LoyaltyOutcome{
		Cards: []entities.LoyaltyCard{
			{ID: "card-old", CustomerID: "b1", MerchantID: "m1", Version: 3},
			{ID: "card-new", CustomerID: "b1", MerchantID: "m1"},
		},
		PromoCodes: []entities.PromoCode{{ID: "promo-1"}},
		History:    entities.LoyaltyHistory{ID: "hist-1"},
	}

	items, errs, err := tables.loyaltyWrites(outcome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 4 || len(errs) != 4 {
		t.Fatalf("expected 4 items, got %d items %d errs", len(items), len(errs))
	}
	if aws.ToString(items[0].Put.ConditionExpression) != "#version = :read" {
		t.Fatalf("existing card must be version guarded, got %q", aws.ToString(items[0].Put.ConditionExpression))
	}
	if v := items[0].Put.Item["version"].(*types.AttributeValueMemberN).Value; v != "4" {
		t.Fatalf("expected version bump to 4, got %s", v)
	}
	if aws.ToString(items[1].Put.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("new card must be create-only, got %q", aws.ToString(items[1].Put.ConditionExpression))
	}
	if !errors.Is(errs[0], interfaces.ErrVersionConflict) || errs[2] != nil {
		t.Fatalf("unexpected error table: %v", errs)
	}
}

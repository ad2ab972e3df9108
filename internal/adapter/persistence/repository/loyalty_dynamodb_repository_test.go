package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"happydeals/internal/domain/entities"
)

func TestRedeemPromoCodeCondition(t *testing.T) {
	tables := loyaltyTables{promoCodes: "pc"}
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	in := tables.redeemPromoCode("promo-1", "b1", now)
	cond := aws.ToString(in.ConditionExpression)
	for _, part := range []string{
		"#status = :active",
		"#customer = :userId",
		"#expires > :now",
		"#usage < #max",
	} {
		if !strings.Contains(cond, part) {
			t.Fatalf("condition %q misses %q", cond, part)
		}
	}
	if numberAttr(t, in.ExpressionAttributeValues, ":now") != "1777896000" {
		t.Fatalf("expiry must compare unix seconds, got %s", numberAttr(t, in.ExpressionAttributeValues, ":now"))
	}
	if stringAttr(t, in.ExpressionAttributeValues, ":active") != string(entities.PromoCodeActive) {
		t.Fatalf("unexpected status value")
	}
	if in.ReturnValues != types.ReturnValueAllNew {
		t.Fatalf("redeem must return the updated code to close exhausted codes")
	}
}

func TestPromoCodeExpiryIsNumeric(t *testing.T) {
	expires := time.Date(2026, 6, 3, 12, 0, 0, 0, time.UTC)
	it := toPromoCodeItem(entities.PromoCode{ID: "promo-1", ExpiresAt: expires})
	if it.ExpiresAt != expires.Unix() {
		t.Fatalf("expected %d, got %d", expires.Unix(), it.ExpiresAt)
	}
	if toPromoCodeItem(entities.PromoCode{ID: "promo-2"}).ExpiresAt != 0 {
		t.Fatalf("codes without expiry must not store one")
	}
}

func TestRewardRequests(t *testing.T) {
	tables := loyaltyTables{cards: "c", promoCodes: "pc"}
	cards := []entities.LoyaltyCard{{ID: "card-1", CustomerID: "b1", MerchantID: "m1", Status: entities.LoyaltyCardCompleted}}
	promos := []entities.PromoCode{{ID: "promo-1"}, {ID: "promo-2"}}

	reqs, err := tables.rewardRequests(cards, promos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 3 || reqs[0].table != "c" || reqs[1].table != "pc" || reqs[2].table != "pc" {
		t.Fatalf("unexpected requests: %+v", reqs)
	}
	if numberAttr(t, reqs[0].write.PutRequest.Item, "version") != "1" {
		t.Fatalf("saved cards start at version 1")
	}
}

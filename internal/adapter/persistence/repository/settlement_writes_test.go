package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

func numberAttr(t *testing.T, values map[string]types.AttributeValue, key string) string {
	t.Helper()
	n, ok := values[key].(*types.AttributeValueMemberN)
	if !ok {
		t.Fatalf("expected number value %s, got %#v", key, values[key])
	}
	return n.Value
}

func stringAttr(t *testing.T, values map[string]types.AttributeValue, key string) string {
	t.Helper()
	s, ok := values[key].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected string value %s, got %#v", key, values[key])
	}
	return s.Value
}

func assertConsume(t *testing.T, item types.TransactWriteItem, id string) {
	t.Helper()
	if item.Update == nil || aws.ToString(item.Update.ConditionExpression) != "attribute_exists(#id) AND #status = :pending" {
		t.Fatalf("expected pending payment consume, got %#v", item)
	}
	if stringAttr(t, item.Update.Key, "id") != id {
		t.Fatalf("consume targets the wrong pending payment")
	}
}

func TestOrderSettlementWrites(t *testing.T) {
	repo := &OrderDynamoRepository{pendingOrders: "po", orders: "o", products: "p", carts: "c"}
	settlement := entities.OrderSettlement{
		Order: entities.Order{ID: "o1", TotalPrice: decimal.RequireFromString("9.90"), Status: entities.OrderStatusPaid},
		Stock: []entities.ProductStockUpdate{
			{ProductID: "prod-1", ReadVersion: 3, Variants: []entities.VariantStock{{Index: 0, VariantID: "v1", Stock: 8}, {Index: 2, VariantID: "v3", Stock: 0}}},
			{ProductID: "prod-2", ReadVersion: 0, Variants: []entities.VariantStock{{Index: 1, VariantID: "v9", Stock: 4}}},
		},
		CartID:           "cart-1",
		PendingPaymentID: "cs_1",
	}

	items, itemErrs, err := repo.settlementWrites(settlement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 6 || len(itemErrs) != 6 {
		t.Fatalf("expected 6 writes, got %d/%d", len(items), len(itemErrs))
	}

	t.Run("order is create only", func(t *testing.T) {
		if items[0].Put == nil || aws.ToString(items[0].Put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected order write: %#v", items[0])
		}
		if !errors.Is(itemErrs[0], interfaces.ErrPendingPaymentConsumed) || !errors.Is(itemErrs[1], interfaces.ErrPreconditionFailed) {
			t.Fatalf("unexpected error mapping: %v", itemErrs[:2])
		}
	})

	t.Run("stock update touches only listed variants", func(t *testing.T) {
		up := items[2].Update
		if up == nil || items[2].Put != nil {
			t.Fatalf("stock must be written with an update, got %#v", items[2])
		}
		want := "SET #variants[0].#stock = :s0, #variants[2].#stock = :s1 ADD #version :one"
		if got := aws.ToString(up.UpdateExpression); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
		cond := aws.ToString(up.ConditionExpression)
		for _, part := range []string{"attribute_exists(#id)", "#version = :read", "#variants[0].#vid = :v0", "#variants[2].#vid = :v1"} {
			if !strings.Contains(cond, part) {
				t.Fatalf("condition %q misses %q", cond, part)
			}
		}
		if strings.Contains(cond, "attribute_not_exists(#version)") {
			t.Fatalf("versioned product must require its read version: %q", cond)
		}
		if numberAttr(t, up.ExpressionAttributeValues, ":read") != "3" || numberAttr(t, up.ExpressionAttributeValues, ":s0") != "8" || stringAttr(t, up.ExpressionAttributeValues, ":v1") != "v3" {
			t.Fatalf("unexpected values: %#v", up.ExpressionAttributeValues)
		}
		if !errors.Is(itemErrs[2], interfaces.ErrVersionConflict) {
			t.Fatalf("expected version conflict mapping, got %v", itemErrs[2])
		}
	})

	t.Run("product without version attribute can settle", func(t *testing.T) {
		cond := aws.ToString(items[3].Update.ConditionExpression)
		if !strings.Contains(cond, "(attribute_not_exists(#version) OR #version = :read)") {
			t.Fatalf("unexpected condition: %q", cond)
		}
	})

	t.Run("cart and pending payment", func(t *testing.T) {
		if items[4].Delete == nil || aws.ToString(items[4].Delete.TableName) != "c" || itemErrs[4] != nil {
			t.Fatalf("unexpected cart write: %#v", items[4])
		}
		assertConsume(t, items[5], "cs_1")
		if !errors.Is(itemErrs[5], interfaces.ErrPendingPaymentConsumed) {
			t.Fatalf("unexpected consume mapping: %v", itemErrs[5])
		}
	})
}

func TestStockUpdateWithoutVariants(t *testing.T) {
	repo := &OrderDynamoRepository{products: "p"}
	up := repo.stockUpdate(entities.ProductStockUpdate{ProductID: "prod-1", ReadVersion: 2})
	if aws.ToString(up.UpdateExpression) != "ADD #version :one" {
		t.Fatalf("unexpected update: %q", aws.ToString(up.UpdateExpression))
	}
	if _, ok := up.ExpressionAttributeNames["#variants"]; ok {
		t.Fatalf("unused attribute names are rejected by DynamoDB")
	}
}

func TestReservationWrites(t *testing.T) {
	repo := &FlashDealDynamoRepository{posts: "posts", reservations: "reservations"}
	items, itemErrs, err := repo.reservationWrites(entities.ReservationSettlement{
		Reservation:      entities.Reservation{ID: "res-1", PostID: "post-1", Quantity: 1, Price: decimal.RequireFromString("4.99")},
		PendingPaymentID: "pi_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(items))
	}
	if aws.ToString(items[0].Put.ConditionExpression) != "attribute_not_exists(#id)" || !errors.Is(itemErrs[0], interfaces.ErrAlreadyExists) {
		t.Fatalf("reservation must be create only: %#v", items[0].Put)
	}
	if numberAttr(t, items[1].Update.ExpressionAttributeValues, ":delta") != "-1" {
		t.Fatalf("expected basket decrement of one")
	}
	assertConsume(t, items[2], "pi_1")
}

func TestBookingWrites(t *testing.T) {
	repo := &BookingDynamoRepository{tableName: "bookings"}
	items, itemErrs, err := repo.bookingWrites(entities.BookingSettlement{Booking: entities.Booking{ID: "bk-1"}, PendingPaymentID: "cs_2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || aws.ToString(items[0].Put.ConditionExpression) != "attribute_not_exists(#id)" || !errors.Is(itemErrs[0], interfaces.ErrAlreadyExists) {
		t.Fatalf("booking must be create only: %#v", items)
	}
	assertConsume(t, items[1], "cs_2")
}

func TestConnectedAccountUpdate(t *testing.T) {
	repo := &MerchantDynamoRepository{merchants: "merchants"}
	in := repo.connectedAccountUpdate("m1", "acct_1")

	cond := aws.ToString(in.ConditionExpression)
	if !strings.Contains(cond, "attribute_not_exists(#account) OR #account = :account") {
		t.Fatalf("stored account must not be replaced: %q", cond)
	}
	if stringAttr(t, in.ExpressionAttributeValues, ":account") != "acct_1" {
		t.Fatalf("unexpected account value")
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
	mock_interfaces "happydeals/internal/usecase/interfaces/mocks"
)

func TestDecrementVariantStock(t *testing.T) {
	p := entities.Product{ID: "prod-1", Variants: []entities.ProductVariant{{ID: "v1", Stock: 5}, {ID: "v2", Stock: 1}}}

	if !DecrementVariantStock(&p, "v1", 2) || p.Variants[0].Stock != 3 {
		t.Fatalf("expected stock 3, got %+v", p.Variants[0])
	}
	if !DecrementVariantStock(&p, "v2", 4) || p.Variants[1].Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %+v", p.Variants[1])
	}
	if DecrementVariantStock(&p, "missing", 1) {
		t.Fatal("expected missing variant to report false")
	}
}

func TestStockUpdate(t *testing.T) {
	p := entities.Product{ID: "p1", Version: 4, Variants: []entities.ProductVariant{{ID: "a", Stock: 1}, {ID: "b", Stock: 2}, {ID: "c", Stock: 3}}}

	up := stockUpdate(p, []string{"c", "a"})
	if up.ProductID != "p1" || up.ReadVersion != 4 {
		t.Fatalf("unexpected update: %+v", up)
	}
	if len(up.Variants) != 2 || up.Variants[0].Index != 0 || up.Variants[1].Index != 2 || up.Variants[1].Stock != 3 {
		t.Fatalf("only touched variants keep their positions, got %+v", up.Variants)
	}
}

func TestOrderSettlementUseCase_SettleOrder(t *testing.T) {
	intent := entities.OrderIntent{UserID: "b1", OrderID: "po-1", CartID: "cart-1"}
	event := entities.GatewayEvent{ID: "evt_1", Type: entities.GatewayEventCheckoutCompleted, ObjectID: "cs_1", PaymentReferenceID: "pi_1"}
	po := entities.PendingOrder{
		ID: "po-1", BuyerID: "b1", SellerID: "m1", CartID: "cart-1", Currency: "eur",
		TotalPrice: decimal.RequireFromString("20.00"),
		Items: []entities.LineItem{
			{ProductID: "prod-1", VariantID: "v1", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
			{ProductID: "prod-1", VariantID: "v2", Quantity: 3, UnitPrice: decimal.NewFromInt(2)},
			{ProductID: "gone", VariantID: "v1", Quantity: 1, UnitPrice: decimal.NewFromInt(4)},
		},
	}
	product := func(version int64) entities.Product {
		return entities.Product{ID: "prod-1", SellerID: "m1", Version: version, Variants: []entities.ProductVariant{{ID: "v1", Stock: 10}, {ID: "v2", Stock: 1}}}
	}

	setup := func(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIPendingPaymentRepository, *OrderSettlementUseCase) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		pending := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
		return ctrl, orders, pending, NewOrderSettlementUseCase(orders, pending, nil, nil)
	}

	t.Run("pending order missing", func(t *testing.T) {
		ctrl, orders, pending, uc := setup(t)
		defer ctrl.Finish()
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{ID: "cs_1", Status: entities.PendingPaymentStatusPending}, nil)
		orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(entities.PendingOrder{}, nil)

		_, err := uc.SettleOrder(context.Background(), intent, event)
		if !errors.Is(err, ErrPendingOrderNotFound) {
			t.Fatalf("expected ErrPendingOrderNotFound, got %v", err)
		}
	})

	t.Run("already consumed payment", func(t *testing.T) {
		ctrl, _, pending, uc := setup(t)
		defer ctrl.Finish()
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{ID: "cs_1", Status: entities.PendingPaymentStatusConsumed}, nil)

		_, err := uc.SettleOrder(context.Background(), intent, event)
		if !errors.Is(err, ErrAlreadySettled) {
			t.Fatalf("expected ErrAlreadySettled, got %v", err)
		}
	})

	t.Run("single item order", func(t *testing.T) {
		ctrl, orders, pending, uc := setup(t)
		defer ctrl.Finish()
		o1 := entities.OrderIntent{UserID: "b1", OrderID: "o1"}
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{ID: "cs_1", Status: entities.PendingPaymentStatusPending}, nil)
		orders.EXPECT().GetPendingOrder(gomock.Any(), "o1").Return(entities.PendingOrder{
			ID: "o1", BuyerID: "b1", SellerID: "m1", TotalPrice: decimal.RequireFromString("40.00"),
			Items: []entities.LineItem{{ProductID: "p1", VariantID: "v1", Quantity: 2, UnitPrice: decimal.NewFromInt(20)}},
		}, nil)
		orders.EXPECT().GetProduct(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Version: 1, Variants: []entities.ProductVariant{{ID: "v1", Stock: 5}}}, nil)
		orders.EXPECT().CommitSettlement(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.OrderSettlement) error {
			if s.Order.ID != "o1" || s.Order.Status != entities.OrderStatusPaid {
				t.Fatalf("unexpected order: %+v", s.Order)
			}
			if len(s.Stock) != 1 || len(s.Stock[0].Variants) != 1 || s.Stock[0].Variants[0].Stock != 3 {
				t.Fatalf("expected v1 stock 3, got %+v", s.Stock)
			}
			return nil
		})

		order, err := uc.SettleOrder(context.Background(), o1, event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.TotalPrice.Equal(decimal.RequireFromString("40.00")) {
			t.Fatalf("unexpected total: %s", order.TotalPrice)
		}
	})

	t.Run("commits order with clamped stock after a conflict", func(t *testing.T) {
		ctrl, orders, pending, uc := setup(t)
		defer ctrl.Finish()
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{ID: "cs_1", OwnerUserID: "b1", Status: entities.PendingPaymentStatusPending}, nil)
		orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(po, nil).Times(2)
		gomock.InOrder(
			orders.EXPECT().GetProduct(gomock.Any(), "prod-1").Return(product(1), nil),
			orders.EXPECT().GetProduct(gomock.Any(), "gone").Return(entities.Product{}, nil),
			orders.EXPECT().CommitSettlement(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict),
			orders.EXPECT().GetProduct(gomock.Any(), "prod-1").Return(product(2), nil),
			orders.EXPECT().GetProduct(gomock.Any(), "gone").Return(entities.Product{}, nil),
			orders.EXPECT().CommitSettlement(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.OrderSettlement) error {
				if s.Order.ID != "po-1" || s.Order.Status != entities.OrderStatusPaid || s.Order.PaymentReferenceID != "pi_1" {
					t.Fatalf("unexpected order: %+v", s.Order)
				}
				if len(s.Stock) != 1 || s.Stock[0].ProductID != "prod-1" || s.Stock[0].ReadVersion != 2 {
					t.Fatalf("expected one product read at version 2, got %+v", s.Stock)
				}
				want := []entities.VariantStock{{Index: 0, VariantID: "v1", Stock: 8}, {Index: 1, VariantID: "v2", Stock: 0}}
				if len(s.Stock[0].Variants) != 2 || s.Stock[0].Variants[0] != want[0] || s.Stock[0].Variants[1] != want[1] {
					t.Fatalf("unexpected stock: %+v", s.Stock[0].Variants)
				}
				if s.CartID != "cart-1" || s.PendingPaymentID != "cs_1" {
					t.Fatalf("unexpected settlement refs: %+v", s)
				}
				return nil
			}),
		)

		order, err := uc.SettleOrder(context.Background(), intent, event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.BuyerID != "b1" || order.SellerID != "m1" || len(order.Items) != 3 {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("pending payment missing", func(t *testing.T) {
		ctrl, _, pending, uc := setup(t)
		defer ctrl.Finish()
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{}, nil)

		_, err := uc.SettleOrder(context.Background(), intent, event)
		if !errors.Is(err, ErrAlreadySettled) {
			t.Fatalf("expected ErrAlreadySettled, got %v", err)
		}
	})

	t.Run("pending order consumed during commit", func(t *testing.T) {
		ctrl, orders, pending, uc := setup(t)
		defer ctrl.Finish()
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{ID: "cs_1", Status: entities.PendingPaymentStatusPending}, nil)
		orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(entities.PendingOrder{ID: "po-1", BuyerID: "b1", SellerID: "m1"}, nil)
		orders.EXPECT().CommitSettlement(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.OrderSettlement) error {
			if s.PendingPaymentID != "cs_1" {
				t.Fatalf("expected guarded settlement, got %q", s.PendingPaymentID)
			}
			return interfaces.ErrPreconditionFailed
		})

		_, err := uc.SettleOrder(context.Background(), intent, event)
		if !errors.Is(err, ErrPendingOrderNotFound) {
			t.Fatalf("expected ErrPendingOrderNotFound, got %v", err)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl, orders, pending, uc := setup(t)
		defer ctrl.Finish()
		pending.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.PendingPayment{ID: "cs_1", Status: entities.PendingPaymentStatusPending}, nil)
		orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(entities.PendingOrder{ID: "po-1"}, nil).Times(maxOrderSettlementAttempts)
		orders.EXPECT().CommitSettlement(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict).Times(maxOrderSettlementAttempts)

		_, err := uc.SettleOrder(context.Background(), intent, event)
		if !errors.Is(err, ErrSettlementContention) {
			t.Fatalf("expected ErrSettlementContention, got %v", err)
		}
	})

	t.Run("notifications are best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		publisher := mock_interfaces.NewMockINotificationPublisher(ctrl)
		uc := NewOrderSettlementUseCase(orders, nil, users, publisher)

		orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(entities.PendingOrder{ID: "po-1", BuyerID: "b1", SellerID: "m1"}, nil)
		orders.EXPECT().CommitSettlement(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.User{ID: "b1", Email: "b1@test.com"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.User{}, errors.New("ddb"))
		// buyer in-app, merchant in-app, buyer email; merchant has no email
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(3)

		if _, err := uc.SettleOrder(context.Background(), intent, event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"happydeals/internal/domain/entities"
	mock_interfaces "happydeals/internal/usecase/interfaces/mocks"
)

type paymentMocks struct {
	gateway  *mock_interfaces.MockIPaymentGateway
	users    *mock_interfaces.MockIUserRepository
	pending  *mock_interfaces.MockIPendingPaymentRepository
	orders   *mock_interfaces.MockIOrderRepository
	usecase  *PaymentUseCase
	fixedNow time.Time
}

func newPaymentMocks(ctrl *gomock.Controller) paymentMocks {
	m := paymentMocks{
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		pending:  mock_interfaces.NewMockIPendingPaymentRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		fixedNow: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
	}
	m.usecase = NewPaymentUseCase(m.gateway, m.users, m.pending, m.orders, "EUR", 24*time.Hour)
	m.usecase.now = func() time.Time { return m.fixedNow }
	return m
}

func TestPaymentUseCase_InitiatePayment_Validation(t *testing.T) {
	base := InitiatePaymentCommand{
		PurchaseType:     entities.PurchaseTypeFlashDeal,
		AmountMinorUnits: 499,
		Metadata:         map[string]string{"postId": "p1"},
		ClientKind:       entities.ClientKindWeb,
		SuccessURL:       "https://app.test/success",
		CancelURL:        "https://app.test/cancel",
		OwnerUserID:      "u1",
	}
	cases := []struct {
		name   string
		mutate func(*InitiatePaymentCommand)
		want   error
		kind   Kind
	}{
		{"unauthenticated", func(c *InitiatePaymentCommand) { c.OwnerUserID = "" }, ErrUnauthenticated, KindUnauthenticated},
		{"unknown type", func(c *InitiatePaymentCommand) { c.PurchaseType = "gift_card" }, ErrUnsupportedPurchaseType, KindInvalidArgument},
		{"zero amount", func(c *InitiatePaymentCommand) { c.AmountMinorUnits = 0 }, ErrInvalidAmount, KindInvalidArgument},
		{"bad client", func(c *InitiatePaymentCommand) { c.ClientKind = "desktop" }, ErrInvalidClientKind, KindInvalidArgument},
		{"web without urls", func(c *InitiatePaymentCommand) { c.SuccessURL = "" }, ErrMissingSuccessURL, KindInvalidArgument},
		{"missing post id", func(c *InitiatePaymentCommand) { c.Metadata = map[string]string{} }, ErrInvalidPurchaseMetadata, KindInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPaymentMocks(ctrl)

			cmd := base
			tc.mutate(&cmd)
			_, err := m.usecase.InitiatePayment(context.Background(), cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if ErrorKind(err) != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, ErrorKind(err))
			}
		})
	}
}

func TestPaymentUseCase_InitiatePayment_Order(t *testing.T) {
	po := entities.PendingOrder{ID: "po-1", BuyerID: "u1", SellerID: "m1", CartID: "cart-1", TotalPrice: decimal.RequireFromString("12.34")}
	cmd := InitiatePaymentCommand{
		PurchaseType:     entities.PurchaseTypeOrder,
		AmountMinorUnits: 1234,
		Metadata:         map[string]string{"orderId": "po-1"},
		ClientKind:       entities.ClientKindWeb,
		SuccessURL:       "https://app.test/success?from=cart",
		CancelURL:        "https://app.test/cancel",
		OwnerUserID:      "u1",
	}

	t.Run("pending order missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPaymentMocks(ctrl)
		m.orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(entities.PendingOrder{}, nil)

		_, err := m.usecase.InitiatePayment(context.Background(), cmd)
		if !errors.Is(err, ErrPendingOrderNotFound) {
			t.Fatalf("expected ErrPendingOrderNotFound, got %v", err)
		}
	})

	t.Run("pending order of another buyer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPaymentMocks(ctrl)
		other := po
		other.BuyerID = "u2"
		m.orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(other, nil)

		_, err := m.usecase.InitiatePayment(context.Background(), cmd)
		if ErrorKind(err) != KindPermissionDenied {
			t.Fatalf("expected permission denied, got %v", err)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPaymentMocks(ctrl)
		m.orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(po, nil)

		bad := cmd
		bad.AmountMinorUnits = 1000
		_, err := m.usecase.InitiatePayment(context.Background(), bad)
		if !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("expected ErrAmountMismatch, got %v", err)
		}
	})

	t.Run("web checkout creates customer and pending payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPaymentMocks(ctrl)

		m.orders.EXPECT().GetPendingOrder(gomock.Any(), "po-1").Return(po, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Email: "u1@test.com"}, nil)
		m.gateway.EXPECT().CreateCustomer(gomock.Any(), entities.User{ID: "u1", Email: "u1@test.com"}).Return("cus_1", nil)
		m.users.EXPECT().SetGatewayCustomerID(gomock.Any(), "u1", "cus_1").Return(errors.New("write failed"))
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.CheckoutSessionRequest) (entities.GatewaySession, error) {
			if req.CustomerID != "cus_1" || req.AmountMinorUnits != 1234 || req.Currency != "eur" {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.SuccessURL != "https://app.test/success?from=cart&session_id={CHECKOUT_SESSION_ID}" {
				t.Fatalf("unexpected success url: %s", req.SuccessURL)
			}
			if req.Metadata["type"] != "order" || req.Metadata["orderId"] != "po-1" || req.Metadata["cartId"] != "cart-1" || req.Metadata["userId"] != "u1" {
				t.Fatalf("unexpected metadata: %+v", req.Metadata)
			}
			return entities.GatewaySession{ID: "cs_1", URL: "https://checkout.test/cs_1"}, nil
		})
		m.pending.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PendingPayment) error {
			if p.ID != "cs_1" || p.Status != entities.PendingPaymentStatusPending || p.OwnerUserID != "u1" || p.PurchaseType != entities.PurchaseTypeOrder {
				t.Fatalf("unexpected pending payment: %+v", p)
			}
			if !p.ExpiresAt.Equal(m.fixedNow.Add(24 * time.Hour)) {
				t.Fatalf("unexpected expiry: %s", p.ExpiresAt)
			}
			return nil
		})

		res, err := m.usecase.InitiatePayment(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SessionOrIntentID != "cs_1" || res.RedirectURL != "https://checkout.test/cs_1" || res.ClientSecret != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPaymentUseCase_InitiatePayment_NativeFlashDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newPaymentMocks(ctrl)

	m.users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", GatewayCustomerID: "cus_9"}, nil)
	var reservationID string
	m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentIntentRequest) (entities.GatewaySession, error) {
		reservationID = req.Metadata["reservationId"]
		if req.CustomerID != "cus_9" || req.Metadata["postId"] != "p1" || reservationID == "" || reservationID == "res-other-buyer" {
			t.Fatalf("unexpected request: %+v", req)
		}
		return entities.GatewaySession{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
	})
	m.pending.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PendingPayment) error {
		if p.Metadata["reservationId"] != reservationID {
			t.Fatalf("pending payment must carry the allocated reservation id")
		}
		return nil
	})

	res, err := m.usecase.InitiatePayment(context.Background(), InitiatePaymentCommand{
		PurchaseType:     entities.PurchaseTypeFlashDeal,
		AmountMinorUnits: 499,
		Metadata:         map[string]string{"postId": "p1", "reservationId": "res-other-buyer"},
		ClientKind:       entities.ClientKindNative,
		OwnerUserID:      "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ClientSecret != "pi_1_secret" || res.SessionOrIntentID != "pi_1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPaymentUseCase_InitiatePayment_Booking(t *testing.T) {
	md := map[string]string{
		"serviceId":      "svc-1",
		"serviceName":    "Haircut",
		"merchantId":     "m1",
		"startTime":      "2026-05-10T09:00:00Z",
		"endTime":        "2026-05-10T09:30:00Z",
		"originalPrice":  "30.00",
		"discountAmount": "5.00",
		"promoCodeId":    "promo-1",
	}

	t.Run("amount must equal final price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPaymentMocks(ctrl)
		_, err := m.usecase.InitiatePayment(context.Background(), InitiatePaymentCommand{
			PurchaseType: entities.PurchaseTypeBooking, AmountMinorUnits: 3000, Metadata: md,
			ClientKind: entities.ClientKindNative, OwnerUserID: "u1",
		})
		if !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("expected ErrAmountMismatch, got %v", err)
		}
	})

	t.Run("gateway failure leaves no pending payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPaymentMocks(ctrl)
		m.users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", GatewayCustomerID: "cus_9"}, nil)
		m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(entities.GatewaySession{}, errors.New("stripe down"))

		_, err := m.usecase.InitiatePayment(context.Background(), InitiatePaymentCommand{
			PurchaseType: entities.PurchaseTypeBooking, AmountMinorUnits: 2500, Metadata: md,
			ClientKind: entities.ClientKindNative, OwnerUserID: "u1",
		})
		if err == nil || ErrorKind(err) != KindInternal {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetCheckoutStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newPaymentMocks(ctrl)

	if _, err := m.usecase.GetCheckoutStatus(context.Background(), " "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}

	m.gateway.EXPECT().IsCheckoutSessionPaid(gomock.Any(), "cs_1").Return(true, nil)
	paid, err := m.usecase.GetCheckoutStatus(context.Background(), "cs_1")
	if err != nil || !paid {
		t.Fatalf("expected paid, got %v err=%v", paid, err)
	}
}

func TestWithCheckoutSessionID(t *testing.T) {
	cases := map[string]string{
		"https://a.test/ok":                         "https://a.test/ok?session_id={CHECKOUT_SESSION_ID}",
		"https://a.test/ok?x=1":                     "https://a.test/ok?x=1&session_id={CHECKOUT_SESSION_ID}",
		"https://a.test/ok?s={CHECKOUT_SESSION_ID}": "https://a.test/ok?s={CHECKOUT_SESSION_ID}",
	}
	for in, want := range cases {
		if got := withCheckoutSessionID(in); got != want {
			t.Fatalf("withCheckoutSessionID(%q) = %q, want %q", in, got, want)
		}
	}
	if !strings.HasSuffix(withCheckoutSessionID(" https://a.test "), "session_id={CHECKOUT_SESSION_ID}") {
		t.Fatal("expected trimmed url with session id")
	}
}

func TestPrepareMetadata(t *testing.T) {
	cases := []struct {
		name string
		typ  entities.PurchaseType
		in   map[string]string
		key  string
	}{
		{"reservation id from client is replaced", entities.PurchaseTypeFlashDeal, map[string]string{"postId": "p1", "reservationId": "victim-res"}, "reservationId"},
		{"booking id from client is replaced", entities.PurchaseTypeBooking, map[string]string{"serviceId": "s1", "bookingId": "victim-bk"}, "bookingId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			md := prepareMetadata(tc.typ, "u1", tc.in)
			if md[tc.key] == "" || md[tc.key] == tc.in[tc.key] {
				t.Fatalf("expected a server allocated %s, got %q", tc.key, md[tc.key])
			}
			if md["userId"] != "u1" || md["type"] != string(tc.typ) {
				t.Fatalf("unexpected metadata: %+v", md)
			}
		})
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
	mock_interfaces "happydeals/internal/usecase/interfaces/mocks"
)

func TestBookingSettlementUseCase_SettleBooking(t *testing.T) {
	intent := entities.BookingIntent{
		UserID: "b1", ServiceID: "svc-1", ServiceName: "Haircut", BookingID: "bk-1", MerchantID: "m1",
		StartTime:       time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		OriginalPrice:   decimal.RequireFromString("30.00"),
		DiscountAmount:  decimal.RequireFromString("5.00"),
		PromoCodeID:     "promo-1",
	}
	event := entities.GatewayEvent{ID: "evt_2", Type: entities.GatewayEventCheckoutCompleted, ObjectID: "cs_2", PaymentReferenceID: "pi_2"}

	t.Run("missing service id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewBookingSettlementUseCase(mock_interfaces.NewMockIBookingRepository(ctrl), nil, nil, nil, nil)

		bad := intent
		bad.ServiceID = ""
		_, err := uc.SettleBooking(context.Background(), bad, event)
		if !errors.Is(err, ErrInvalidPurchaseMetadata) {
			t.Fatalf("expected ErrInvalidPurchaseMetadata, got %v", err)
		}
	})

	t.Run("confirms booking and redeems promo code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		loyalty := mock_interfaces.NewMockILoyaltyRepository(ctrl)
		pending := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
		uc := NewBookingSettlementUseCase(bookings, loyalty, pending, nil, nil)

		pending.EXPECT().GetByID(gomock.Any(), "cs_2").Return(entities.PendingPayment{ID: "cs_2", OwnerUserID: "b1", Status: entities.PendingPaymentStatusPending}, nil)
		bookings.EXPECT().CommitBooking(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.BookingSettlement) error {
			b := s.Booking
			if b.ID != "bk-1" || b.Status != entities.BookingStatusConfirmed || !b.FinalPrice.Equal(decimal.NewFromInt(25)) {
				t.Fatalf("unexpected booking: %+v", b)
			}
			if b.PaymentReferenceID != "pi_2" || s.PendingPaymentID != "cs_2" {
				t.Fatalf("unexpected refs: %+v", s)
			}
			return nil
		})
		loyalty.EXPECT().RedeemPromoCode(gomock.Any(), "promo-1", "b1", gomock.Any()).Return(interfaces.ErrPreconditionFailed)

		b, err := uc.SettleBooking(context.Background(), intent, event)
		if err != nil {
			t.Fatalf("promo failure must not fail settlement: %v", err)
		}
		if b.BuyerID != "b1" {
			t.Fatalf("unexpected buyer: %s", b.BuyerID)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		pending := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
		uc := NewBookingSettlementUseCase(bookings, nil, pending, nil, nil)

		pending.EXPECT().GetByID(gomock.Any(), "cs_2").Return(entities.PendingPayment{ID: "cs_2", Status: entities.PendingPaymentStatusPending}, nil)
		bookings.EXPECT().CommitBooking(gomock.Any(), gomock.Any()).Return(interfaces.ErrPendingPaymentConsumed)

		_, err := uc.SettleBooking(context.Background(), intent, event)
		if !errors.Is(err, ErrAlreadySettled) {
			t.Fatalf("expected ErrAlreadySettled, got %v", err)
		}
	})

	t.Run("booking id already written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		loyalty := mock_interfaces.NewMockILoyaltyRepository(ctrl)
		pending := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
		uc := NewBookingSettlementUseCase(bookings, loyalty, pending, nil, nil)

		pending.EXPECT().GetByID(gomock.Any(), "cs_2").Return(entities.PendingPayment{ID: "cs_2", Status: entities.PendingPaymentStatusPending}, nil)
		bookings.EXPECT().CommitBooking(gomock.Any(), gomock.Any()).Return(interfaces.ErrAlreadyExists)

		_, err := uc.SettleBooking(context.Background(), intent, event)
		if !errors.Is(err, ErrAlreadySettled) {
			t.Fatalf("expected ErrAlreadySettled, got %v", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		pending := mock_interfaces.NewMockIPendingPaymentRepository(ctrl)
		uc := NewBookingSettlementUseCase(bookings, nil, pending, nil, nil)

		pending.EXPECT().GetByID(gomock.Any(), "cs_2").Return(entities.PendingPayment{}, errors.New("ddb"))

		_, err := uc.SettleBooking(context.Background(), intent, event)
		if err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}

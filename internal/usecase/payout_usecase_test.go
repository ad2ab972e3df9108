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

func payoutMerchant() entities.MerchantAccount {
	return entities.MerchantAccount{
		ID:                       "m1",
		AvailableBalance:         decimal.RequireFromString("120.50"),
		ConnectedPayoutAccountID: "acct_1",
	}
}

func newTestPayoutUseCase(gateway *mock_interfaces.MockIPaymentGateway, merchants *mock_interfaces.MockIMerchantRepository) *PayoutUseCase {
	uc := NewPayoutUseCase(gateway, merchants, "eur")
	uc.newID = func() string { return "payout-1" }
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestPayoutUseCase_RequestPayout_Rejections(t *testing.T) {
	noAccount := payoutMerchant()
	noAccount.ConnectedPayoutAccountID = ""

	cases := []struct {
		name      string
		merchant  entities.MerchantAccount
		amount    string
		requester string
		want      error
	}{
		{"unauthenticated", payoutMerchant(), "10", "", ErrUnauthenticated},
		{"merchant missing", entities.MerchantAccount{}, "10", "m1", ErrMerchantNotFound},
		{"other user", payoutMerchant(), "10", "u9", ErrPayoutPermissionDenied},
		{"zero amount", payoutMerchant(), "0", "m1", ErrPayoutAmountInvalid},
		{"negative amount", payoutMerchant(), "-5", "m1", ErrPayoutAmountInvalid},
		{"above balance", payoutMerchant(), "120.51", "m1", ErrPayoutAmountInvalid},
		{"sub-cent amount", payoutMerchant(), "10.005", "m1", ErrPayoutAmountInvalid},
		{"no connected account", noAccount, "10", "m1", ErrPayoutAccountNotConfigured},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			merchants := mock_interfaces.NewMockIMerchantRepository(ctrl)
			if tc.requester != "" {
				merchants.EXPECT().GetByID(gomock.Any(), "m1").Return(tc.merchant, nil)
			}

			uc := newTestPayoutUseCase(gateway, merchants)
			_, err := uc.RequestPayout(context.Background(), "m1", decimal.RequireFromString(tc.amount), tc.requester)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPayoutUseCase_RequestPayout(t *testing.T) {
	t.Run("transfers and records payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		merchants := mock_interfaces.NewMockIMerchantRepository(ctrl)
		merchants.EXPECT().GetByID(gomock.Any(), "m1").Return(payoutMerchant(), nil)
		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.TransferRequest) (string, error) {
			if req.AmountMinorUnits != 12050 || req.Currency != "eur" || req.DestinationAccountID != "acct_1" || req.IdempotencyKey != "payout-1" {
				t.Fatalf("unexpected transfer request: %+v", req)
			}
			return "tr_1", nil
		})
		merchants.EXPECT().CommitPayout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payout) error {
			if p.ID != "payout-1" || p.TransferID != "tr_1" || p.Status != entities.PayoutStatusCompleted || !p.Amount.Equal(decimal.RequireFromString("120.50")) {
				t.Fatalf("unexpected payout: %+v", p)
			}
			return nil
		})

		uc := newTestPayoutUseCase(gateway, merchants)
		payout, err := uc.RequestPayout(context.Background(), "m1", decimal.RequireFromString("120.50"), "m1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payout.TransferID != "tr_1" {
			t.Fatalf("expected transfer id on payout, got %+v", payout)
		}
	})

	t.Run("transfer failure skips bookkeeping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		merchants := mock_interfaces.NewMockIMerchantRepository(ctrl)
		merchants.EXPECT().GetByID(gomock.Any(), "m1").Return(payoutMerchant(), nil)
		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Return("", errors.New("insufficient platform funds"))

		uc := newTestPayoutUseCase(gateway, merchants)
		if _, err := uc.RequestPayout(context.Background(), "m1", decimal.NewFromInt(10), "m1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("balance moved between read and commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		merchants := mock_interfaces.NewMockIMerchantRepository(ctrl)
		merchants.EXPECT().GetByID(gomock.Any(), "m1").Return(payoutMerchant(), nil)
		gateway.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Return("tr_2", nil)
		merchants.EXPECT().CommitPayout(gomock.Any(), gomock.Any()).Return(interfaces.ErrPreconditionFailed)

		uc := newTestPayoutUseCase(gateway, merchants)
		_, err := uc.RequestPayout(context.Background(), "m1", decimal.NewFromInt(100), "m1")
		if !errors.Is(err, ErrPayoutAmountInvalid) {
			t.Fatalf("expected ErrPayoutAmountInvalid, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var (
	ErrPayoutAmountInvalid        = errors.New("payout amount must be positive, in whole cents and not exceed the available balance")
	ErrPayoutPermissionDenied     = errors.New("only the merchant can request its payout")
	ErrPayoutAccountNotConfigured = errors.New("merchant has no connected payout account")
)

type IPayoutUseCase interface {
	RequestPayout(ctx context.Context, merchantID string, amount decimal.Decimal, requesterID string) (entities.Payout, error)
}

type PayoutUseCase struct {
	gateway   interfaces.IPaymentGateway
	merchants interfaces.IMerchantRepository
	currency  string
	newID     func() string
	now       func() time.Time
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(gateway interfaces.IPaymentGateway, merchants interfaces.IMerchantRepository, currency string) *PayoutUseCase {
	return &PayoutUseCase{
		gateway:   gateway,
		merchants: merchants,
		currency:  currency,
		newID:     uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PayoutUseCase) RequestPayout(ctx context.Context, merchantID string, amount decimal.Decimal, requesterID string) (entities.Payout, error) {
	merchantID = strings.TrimSpace(merchantID)
	requesterID = strings.TrimSpace(requesterID)
	log.Printf("[payout][usecase] request start merchant_id=%s amount=%s requester=%s", merchantID, amount, requesterID)
	if requesterID == "" {
		return entities.Payout{}, ErrUnauthenticated
	}

	merchant, err := u.merchants.GetByID(ctx, merchantID)
	if err != nil {
		log.Printf("[payout][usecase] merchant lookup failed merchant_id=%s err=%v", merchantID, err)
		return entities.Payout{}, err
	}
	if merchant.ID == "" {
		return entities.Payout{}, ErrMerchantNotFound
	}
	if requesterID != merchant.ID {
		log.Printf("[payout][usecase] permission denied merchant_id=%s requester=%s", merchantID, requesterID)
		return entities.Payout{}, ErrPayoutPermissionDenied
	}
	// Sub-cent amounts would debit more than the rounded transfer pays out.
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) || amount.GreaterThan(merchant.AvailableBalance) {
		log.Printf("[payout][usecase] invalid amount merchant_id=%s amount=%s available=%s", merchantID, amount, merchant.AvailableBalance)
		return entities.Payout{}, ErrPayoutAmountInvalid
	}
	if merchant.ConnectedPayoutAccountID == "" {
		return entities.Payout{}, ErrPayoutAccountNotConfigured
	}

	payout := entities.Payout{
		ID:         u.newID(),
		MerchantID: merchant.ID,
		Amount:     amount,
		Status:     entities.PayoutStatusCompleted,
		CreatedAt:  u.now(),
	}
	transferID, err := u.gateway.CreateTransfer(ctx, entities.TransferRequest{
		AmountMinorUnits:     entities.ToMinorUnits(amount),
		Currency:             u.currency,
		DestinationAccountID: merchant.ConnectedPayoutAccountID,
		IdempotencyKey:       payout.ID,
		Metadata:             map[string]string{"merchantId": merchant.ID, "payoutId": payout.ID},
	})
	if err != nil {
		log.Printf("[payout][usecase] transfer failed merchant_id=%s payout_id=%s err=%v", merchantID, payout.ID, err)
		return entities.Payout{}, fmt.Errorf("create transfer: %w", err)
	}
	payout.TransferID = transferID

	if err := u.merchants.CommitPayout(ctx, payout); err != nil {
		// Money already left the platform account; reconcile by transfer id.
		log.Printf("[payout][usecase] RECONCILE transfer sent but bookkeeping failed merchant_id=%s payout_id=%s transfer_id=%s amount=%s err=%v",
			merchantID, payout.ID, transferID, amount, err)
		if errors.Is(err, interfaces.ErrPreconditionFailed) {
			return entities.Payout{}, ErrPayoutAmountInvalid
		}
		return entities.Payout{}, fmt.Errorf("commit payout: %w", err)
	}
	log.Printf("[payout][usecase] payout success merchant_id=%s payout_id=%s transfer_id=%s amount=%s", merchantID, payout.ID, transferID, amount)
	return payout, nil
}

package interfaces

import (
	"context"
	"time"

	"happydeals/internal/domain/entities"
)

type ILoyaltyRepository interface {
	GetProgram(ctx context.Context, id string) (entities.LoyaltyProgram, error)
	// GetActiveCard returns the zero card when the customer has no active card at the merchant.
	GetActiveCard(ctx context.Context, customerID, merchantID string) (entities.LoyaltyCard, error)
	// RedeemPromoCode consumes one use of an active, unexpired code that still
	// has uses left. Anything else is ErrPreconditionFailed.
	RedeemPromoCode(ctx context.Context, promoCodeID, userID string, now time.Time) error
	// SaveRewards writes completed cards and reward codes that did not fit in
	// the ledger credit transaction.
	SaveRewards(ctx context.Context, cards []entities.LoyaltyCard, promoCodes []entities.PromoCode) error
}

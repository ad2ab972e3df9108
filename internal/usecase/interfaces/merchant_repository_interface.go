package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

// IMerchantRepository owns the merchant balance counters and everything that
// must move with them.
type IMerchantRepository interface {
	GetByID(ctx context.Context, id string) (entities.MerchantAccount, error)
	// CommitCredit adds the entry amounts to the merchant counters, writes the
	// ledger entry and the loyalty outcome in one transaction.
	CommitCredit(ctx context.Context, credit entities.LedgerCredit) error
	// CommitPayout debits available_balance (never below zero) and records the payout.
	CommitPayout(ctx context.Context, payout entities.Payout) error
	// SetConnectedPayoutAccount records the merchant's connected account. It
	// returns ErrPreconditionFailed when the merchant is missing or already
	// holds a different account.
	SetConnectedPayoutAccount(ctx context.Context, merchantID, accountID string) error
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchantAccount is keyed by the owner's user id.
//
// TotalGain and TotalFees only grow. AvailableBalance grows on ledger credits
// and shrinks on payouts; it never goes below zero.
type MerchantAccount struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	Email                    string          `json:"email,omitempty"`
	AvailableBalance         decimal.Decimal `json:"available_balance"`
	TotalGain                decimal.Decimal `json:"total_gain"`
	TotalFees                decimal.Decimal `json:"total_fees"`
	ConnectedPayoutAccountID string          `json:"connected_payout_account_id,omitempty"`
	LoyaltyProgramID         string          `json:"loyalty_program_id,omitempty"`
}

type LedgerEntryType string

const LedgerEntryTypeCredit LedgerEntryType = "credit"

type LedgerEntryStatus string

const LedgerEntryStatusCompleted LedgerEntryStatus = "completed"

// TransactionLedgerEntry records one merchant credit. TotalAmount = FeeAmount + AmountAfterFee.
type TransactionLedgerEntry struct {
	ID             string            `json:"id"`
	MerchantID     string            `json:"merchant_id"`
	PurchaseID     string            `json:"purchase_id"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	FeeAmount      decimal.Decimal   `json:"fee_amount"`
	AmountAfterFee decimal.Decimal   `json:"amount_after_fee"`
	Type           LedgerEntryType   `json:"type"`
	Status         LedgerEntryStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// LedgerEntryIDForOrder derives the ledger entry id from the order, so a
// replayed completion collides instead of double crediting.
func LedgerEntryIDForOrder(orderID string) string {
	return "credit_" + orderID
}

// LedgerCredit is the atomic write set of one completed order: merchant
// counters, the ledger entry, and any loyalty changes.
type LedgerCredit struct {
	Entry   TransactionLedgerEntry
	Loyalty *LoyaltyOutcome
}

// OrderCompletedEvent is emitted when an order enters the completed status.
// TotalPrice is kept as received and validated by the ledger updater.
type OrderCompletedEvent struct {
	OrderID    string `json:"order_id"`
	SellerID   string `json:"seller_id"`
	BuyerID    string `json:"buyer_id"`
	TotalPrice string `json:"total_price"`
}

type PayoutStatus string

const PayoutStatusCompleted PayoutStatus = "completed"

type Payout struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     PayoutStatus    `json:"status"`
	TransferID string          `json:"transfer_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

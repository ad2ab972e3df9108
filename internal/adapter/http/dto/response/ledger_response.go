package response

import (
	"time"

	"happydeals/internal/domain/entities"
)

type LedgerEntryResponse struct {
	ID             string    `json:"id"`
	MerchantID     string    `json:"merchant_id"`
	PurchaseID     string    `json:"purchase_id"`
	TotalAmount    string    `json:"total_amount"`
	FeeAmount      string    `json:"fee_amount"`
	AmountAfterFee string    `json:"amount_after_fee"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromLedgerEntry(e entities.TransactionLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:             e.ID,
		MerchantID:     e.MerchantID,
		PurchaseID:     e.PurchaseID,
		TotalAmount:    e.TotalAmount.StringFixed(2),
		FeeAmount:      e.FeeAmount.StringFixed(2),
		AmountAfterFee: e.AmountAfterFee.StringFixed(2),
		Type:           string(e.Type),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
	}
}

type PayoutResponse struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Amount     string    `json:"amount"`
	Status     string    `json:"status"`
	TransferID string    `json:"transfer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ID:         p.ID,
		MerchantID: p.MerchantID,
		Amount:     p.Amount.StringFixed(2),
		Status:     string(p.Status),
		TransferID: p.TransferID,
		CreatedAt:  p.CreatedAt,
	}
}

type OnboardingLinkResponse struct {
	AccountID string `json:"account_id"`
	URL       string `json:"url"`
}

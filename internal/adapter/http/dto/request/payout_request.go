package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayoutAmount = errors.New("invalid payout amount")
)

// PayoutRequest takes the amount as a decimal string in major units.
type PayoutRequest struct {
	MerchantID string `json:"merchant_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

func (r PayoutRequest) ResolveAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, ErrInvalidPayoutAmount
	}
	return amount, nil
}

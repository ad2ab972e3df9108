package request

import (
	"strings"

	"happydeals/internal/domain/entities"
)

// InitiatePaymentRequest starts a payment for any purchase type. Metadata
// carries the purchase-specific fields (orderId, postId, bookingId, ...).
type InitiatePaymentRequest struct {
	PurchaseType     string            `json:"purchase_type" binding:"required"`
	AmountMinorUnits int64             `json:"amount_minor_units" binding:"required"`
	Metadata         map[string]string `json:"metadata"`
	ClientKind       string            `json:"client_kind"`
	SuccessURL       string            `json:"success_url"`
	CancelURL        string            `json:"cancel_url"`
}

func (r InitiatePaymentRequest) ResolvePurchaseType() entities.PurchaseType {
	return entities.PurchaseType(strings.ToLower(strings.TrimSpace(r.PurchaseType)))
}

// ResolveClientKind defaults to web when the client did not say.
func (r InitiatePaymentRequest) ResolveClientKind() entities.ClientKind {
	v := strings.ToLower(strings.TrimSpace(r.ClientKind))
	if v == "" {
		return entities.ClientKindWeb
	}
	return entities.ClientKind(v)
}

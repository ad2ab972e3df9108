package entities

import "time"

// SettlementError is the audit record written when a settlement handler fails
// after the gateway already captured the money.
type SettlementError struct {
	ID                 string       `json:"id"`
	EventID            string       `json:"event_id"`
	PurchaseType       PurchaseType `json:"purchase_type"`
	ReferenceID        string       `json:"reference_id"`
	PaymentReferenceID string       `json:"payment_reference_id"`
	Error              string       `json:"error"`
	CreatedAt          time.Time    `json:"created_at"`
}

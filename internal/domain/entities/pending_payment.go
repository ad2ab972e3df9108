package entities

import "time"

type PendingPaymentStatus string

const (
	PendingPaymentStatusPending  PendingPaymentStatus = "pending"
	PendingPaymentStatusConsumed PendingPaymentStatus = "consumed"
)

// ClientKind selects hosted checkout (web) or a bare payment intent (native apps).
type ClientKind string

const (
	ClientKindWeb    ClientKind = "web"
	ClientKindNative ClientKind = "native"
)

// PendingPayment stages purchase intent between initiation and the gateway's
// completion event.
//
// Storage model (DynamoDB):
//   - PK: id (gateway checkout session id or payment intent id)
//
// The settlement handlers flip Status to consumed inside their write
// transaction; the sweeper deletes the row once CleanupAfter or ExpiresAt passes.
type PendingPayment struct {
	ID               string               `json:"id"`
	PurchaseType     PurchaseType         `json:"purchase_type"`
	OwnerUserID      string               `json:"owner_user_id"`
	AmountMinorUnits int64                `json:"amount_minor_units"`
	Currency         string               `json:"currency"`
	Metadata         map[string]string    `json:"metadata"`
	Status           PendingPaymentStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	CleanupAfter     time.Time            `json:"cleanup_after,omitempty"`
	ExpiresAt        time.Time            `json:"expires_at"`
}

package usecase

import (
	"context"
	"errors"
	"log"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var ErrAlreadySettled = errors.New("payment already settled")

// pendingGuard resolves which pending payment a settlement must consume.
//
// A missing record is treated like a consumed one: it was either swept after
// an earlier settlement or never staged for this gateway object (for example
// the payment intent behind a checkout session), so nothing may be written.
func pendingGuard(ctx context.Context, repo interfaces.IPendingPaymentRepository, area string, event entities.GatewayEvent) (entities.PendingPayment, error) {
	if repo == nil {
		return entities.PendingPayment{}, nil
	}
	if event.ObjectID == "" {
		return entities.PendingPayment{}, ErrAlreadySettled
	}
	p, err := repo.GetByID(ctx, event.ObjectID)
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if p.ID == "" {
		log.Printf("[%s][settlement] pending payment missing; skipping id=%s event_id=%s", area, event.ObjectID, event.ID)
		return entities.PendingPayment{}, ErrAlreadySettled
	}
	if p.Status == entities.PendingPaymentStatusConsumed {
		return entities.PendingPayment{}, ErrAlreadySettled
	}
	return p, nil
}

// paymentReference prefers the payment intent id over the session id.
func paymentReference(event entities.GatewayEvent) string {
	if event.PaymentReferenceID != "" {
		return event.PaymentReferenceID
	}
	return event.ObjectID
}

// buyerOf trusts the staged owner over the metadata copy.
func buyerOf(pending entities.PendingPayment, metadataUserID string) string {
	if pending.OwnerUserID != "" {
		return pending.OwnerUserID
	}
	return metadataUserID
}

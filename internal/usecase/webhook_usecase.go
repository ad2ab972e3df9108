package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var ErrInvalidSignature = errors.New("webhook signature verification failed")

// IWebhookUseCase ingests gateway webhooks.
//
// Only signature failures are returned. Every other outcome is logged and
// acknowledged so the gateway stops retrying; failed settlements land in the
// error audit table.
type IWebhookUseCase interface {
	HandleWebhook(ctx context.Context, channel entities.WebhookChannel, payload []byte, signature string) error
}

type WebhookUseCase struct {
	gateway         interfaces.IPaymentGateway
	dedup           interfaces.IEventDeduplicator
	pendingPayments interfaces.IPendingPaymentRepository
	audit           interfaces.IErrorAuditRepository
	orders          IOrderSettlementUseCase
	flashDeals      IFlashDealSettlementUseCase
	bookings        IBookingSettlementUseCase
	notify          notifier
	cleanupDelay    time.Duration
	now             func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

type WebhookDeps struct {
	Gateway         interfaces.IPaymentGateway
	Deduplicator    interfaces.IEventDeduplicator
	PendingPayments interfaces.IPendingPaymentRepository
	Audit           interfaces.IErrorAuditRepository
	Publisher       interfaces.INotificationPublisher
	Orders          IOrderSettlementUseCase
	FlashDeals      IFlashDealSettlementUseCase
	Bookings        IBookingSettlementUseCase
	CleanupDelay    time.Duration
}

func NewWebhookUseCase(deps WebhookDeps) *WebhookUseCase {
	return &WebhookUseCase{
		gateway:         deps.Gateway,
		dedup:           deps.Deduplicator,
		pendingPayments: deps.PendingPayments,
		audit:           deps.Audit,
		orders:          deps.Orders,
		flashDeals:      deps.FlashDeals,
		bookings:        deps.Bookings,
		notify:          notifier{publisher: deps.Publisher, area: "webhook"},
		cleanupDelay:    deps.CleanupDelay,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) HandleWebhook(ctx context.Context, channel entities.WebhookChannel, payload []byte, signature string) error {
	event, err := u.gateway.ConstructEvent(payload, signature, channel)
	if err != nil {
		log.Printf("[webhook][usecase] signature verification failed channel=%s err=%v", channel, err)
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	log.Printf("[webhook][usecase] received channel=%s event_id=%s type=%s object_id=%s", channel, event.ID, event.Type, event.ObjectID)

	if event.Type != entities.GatewayEventCheckoutCompleted && event.Type != entities.GatewayEventPaymentIntentSucceeded {
		log.Printf("[webhook][usecase] ignoring event type event_id=%s type=%s", event.ID, event.Type)
		return nil
	}
	defer u.scheduleCleanup(ctx, event.ObjectID)

	intent, err := entities.ParsePurchaseIntent(event.Metadata)
	if err != nil {
		log.Printf("[webhook][usecase] no usable purchase metadata; acknowledging event_id=%s err=%v", event.ID, err)
		return nil
	}
	if !event.Succeeded() {
		log.Printf("[webhook][usecase] object not paid; acknowledging event_id=%s status=%s", event.ID, event.Status)
		return nil
	}
	if !u.firstDelivery(ctx, event.ID) {
		log.Printf("[webhook][usecase] duplicate event; acknowledging event_id=%s", event.ID)
		return nil
	}

	ref, err := u.dispatch(ctx, intent, event)
	switch {
	case err == nil:
		log.Printf("[webhook][usecase] settled event_id=%s type=%s ref=%s", event.ID, intent.PurchaseType(), ref)
		u.sendConfirmation(ctx, intent, ref)
	case errors.Is(err, ErrAlreadySettled):
		log.Printf("[webhook][usecase] already settled event_id=%s type=%s ref=%s", event.ID, intent.PurchaseType(), ref)
	default:
		log.Printf("[webhook][usecase] settlement failed event_id=%s type=%s ref=%s err=%v", event.ID, intent.PurchaseType(), ref, err)
		u.recordFailure(ctx, intent, ref, event, err)
	}
	return nil
}

// dispatch routes the intent to its settlement handler and returns the
// purchase reference (order, reservation or booking id).
func (u *WebhookUseCase) dispatch(ctx context.Context, intent entities.PurchaseIntent, event entities.GatewayEvent) (string, error) {
	switch in := intent.(type) {
	case entities.OrderIntent:
		_, err := u.orders.SettleOrder(ctx, in, event)
		return in.OrderID, err
	case entities.FlashDealIntent:
		_, err := u.flashDeals.SettleFlashDeal(ctx, in, event)
		return in.ReservationID, err
	case entities.BookingIntent:
		_, err := u.bookings.SettleBooking(ctx, in, event)
		return in.BookingID, err
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedPurchaseType, intent)
}

func (u *WebhookUseCase) firstDelivery(ctx context.Context, eventID string) bool {
	if u.dedup == nil || eventID == "" {
		return true
	}
	first, err := u.dedup.MarkProcessed(ctx, eventID)
	if err != nil {
		log.Printf("[webhook][usecase] dedup unavailable; processing event_id=%s err=%v", eventID, err)
		return true
	}
	return first
}

func (u *WebhookUseCase) scheduleCleanup(ctx context.Context, pendingID string) {
	if u.pendingPayments == nil || pendingID == "" {
		return
	}
	at := u.now().Add(u.cleanupDelay)
	if err := u.pendingPayments.ScheduleCleanup(ctx, pendingID, at); err != nil {
		log.Printf("[webhook][usecase] schedule cleanup failed id=%s err=%v", pendingID, err)
	}
}

func (u *WebhookUseCase) recordFailure(ctx context.Context, intent entities.PurchaseIntent, ref string, event entities.GatewayEvent, cause error) {
	if u.audit == nil {
		return
	}
	rec := entities.SettlementError{
		ID:                 uuid.NewString(),
		EventID:            event.ID,
		PurchaseType:       intent.PurchaseType(),
		ReferenceID:        ref,
		PaymentReferenceID: paymentReference(event),
		Error:              cause.Error(),
		CreatedAt:          u.now(),
	}
	if err := u.audit.Record(ctx, rec); err != nil {
		log.Printf("[webhook][usecase] error audit write failed event_id=%s err=%v", event.ID, err)
	}
}

func (u *WebhookUseCase) sendConfirmation(ctx context.Context, intent entities.PurchaseIntent, ref string) {
	var recipient, title, body string
	switch in := intent.(type) {
	case entities.OrderIntent:
		recipient, title, body = in.UserID, "Payment received", "Your order payment was successful."
	case entities.FlashDealIntent:
		recipient, title, body = in.UserID, "Payment received", "Your flash deal basket is reserved."
	case entities.BookingIntent:
		recipient, title, body = in.UserID, "Payment received", fmt.Sprintf("Your booking for %s is paid.", in.ServiceName)
	}
	if recipient == "" {
		return
	}
	u.notify.send(ctx, entities.Notification{
		Channel:     entities.NotificationInApp,
		Template:    TemplatePurchaseConfirmed,
		RecipientID: recipient,
		Title:       title,
		Body:        body,
		Data:        map[string]string{"type": string(intent.PurchaseType()), "referenceId": ref},
	})
}

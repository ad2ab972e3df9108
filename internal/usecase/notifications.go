package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

// Notification templates understood by the delivery workers.
const (
	TemplatePurchaseConfirmed  = "purchase_confirmed"
	TemplateOrderPlaced        = "order_placed"
	TemplateNewOrder           = "merchant_new_order"
	TemplateReservationCreated = "reservation_confirmed"
	TemplateNewReservation     = "merchant_new_reservation"
	TemplateBookingConfirmed   = "booking_confirmed"
	TemplateNewBooking         = "merchant_new_booking"
	TemplateOrderStatusChanged = "order_status_changed"
	TemplateLoyaltyReward      = "loyalty_reward"
)

// notifier wraps the publisher so every send is best-effort.
type notifier struct {
	publisher interfaces.INotificationPublisher
	area      string
}

func (n notifier) send(ctx context.Context, msg entities.Notification) {
	if n.publisher == nil {
		return
	}
	if msg.Channel == entities.NotificationEmail && msg.Email == "" {
		return
	}
	if msg.Channel == entities.NotificationPush && msg.DeviceToken == "" {
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if err := n.publisher.Publish(ctx, msg); err != nil {
		log.Printf("[%s][notify] publish failed channel=%s template=%s recipient=%s err=%v", n.area, msg.Channel, msg.Template, msg.RecipientID, err)
	}
}

// lookupUser reads a profile for contact details; failures yield an empty user.
func lookupUser(ctx context.Context, users interfaces.IUserRepository, area, id string) entities.User {
	if users == nil || id == "" {
		return entities.User{ID: id}
	}
	u, err := users.GetByID(ctx, id)
	if err != nil {
		log.Printf("[%s][notify] user lookup failed user_id=%s err=%v", area, id, err)
		return entities.User{ID: id}
	}
	if u.ID == "" {
		u.ID = id
	}
	return u
}

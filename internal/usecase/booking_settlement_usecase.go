package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

type IBookingSettlementUseCase interface {
	SettleBooking(ctx context.Context, intent entities.BookingIntent, event entities.GatewayEvent) (entities.Booking, error)
}

type BookingSettlementUseCase struct {
	bookings        interfaces.IBookingRepository
	loyalty         interfaces.ILoyaltyRepository
	pendingPayments interfaces.IPendingPaymentRepository
	users           interfaces.IUserRepository
	notify          notifier
	now             func() time.Time
}

var _ IBookingSettlementUseCase = (*BookingSettlementUseCase)(nil)

func NewBookingSettlementUseCase(bookings interfaces.IBookingRepository, loyalty interfaces.ILoyaltyRepository, pendingPayments interfaces.IPendingPaymentRepository, users interfaces.IUserRepository, publisher interfaces.INotificationPublisher) *BookingSettlementUseCase {
	return &BookingSettlementUseCase{
		bookings:        bookings,
		loyalty:         loyalty,
		pendingPayments: pendingPayments,
		users:           users,
		notify:          notifier{publisher: publisher, area: "settlement"},
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingSettlementUseCase) SettleBooking(ctx context.Context, intent entities.BookingIntent, event entities.GatewayEvent) (entities.Booking, error) {
	log.Printf("[settlement][booking] start booking_id=%s service_id=%s event_id=%s", intent.BookingID, intent.ServiceID, event.ID)
	if intent.ServiceID == "" || intent.BookingID == "" {
		return entities.Booking{}, fmt.Errorf("%w: serviceId and bookingId are required", ErrInvalidPurchaseMetadata)
	}
	pending, err := pendingGuard(ctx, u.pendingPayments, "booking", event)
	if err != nil {
		return entities.Booking{}, err
	}

	booking := entities.Booking{
		ID:                 intent.BookingID,
		BuyerID:            buyerOf(pending, intent.UserID),
		MerchantID:         intent.MerchantID,
		ServiceID:          intent.ServiceID,
		ServiceName:        intent.ServiceName,
		StartTime:          intent.StartTime,
		EndTime:            intent.EndTime,
		DurationMinutes:    intent.DurationMinutes,
		OriginalPrice:      intent.OriginalPrice,
		DiscountAmount:     intent.DiscountAmount,
		FinalPrice:         intent.FinalPrice(),
		PromoCodeID:        intent.PromoCodeID,
		Status:             entities.BookingStatusConfirmed,
		PaymentReferenceID: paymentReference(event),
		CreatedAt:          u.now(),
	}

	err = u.bookings.CommitBooking(ctx, entities.BookingSettlement{Booking: booking, PendingPaymentID: pending.ID})
	if errors.Is(err, interfaces.ErrPendingPaymentConsumed) || errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[settlement][booking] already settled booking_id=%s", booking.ID)
		return entities.Booking{}, ErrAlreadySettled
	}
	if err != nil {
		log.Printf("[settlement][booking] commit failed booking_id=%s err=%v", booking.ID, err)
		return entities.Booking{}, err
	}
	log.Printf("[settlement][booking] commit success booking_id=%s final_price=%s", booking.ID, booking.FinalPrice)

	if booking.PromoCodeID != "" && u.loyalty != nil {
		if err := u.loyalty.RedeemPromoCode(ctx, booking.PromoCodeID, booking.BuyerID, booking.CreatedAt); err != nil {
			log.Printf("[settlement][booking] promo code redeem failed booking_id=%s promo_code_id=%s err=%v", booking.ID, booking.PromoCodeID, err)
		}
	}

	u.sendNotifications(ctx, booking)
	return booking, nil
}

func (u *BookingSettlementUseCase) sendNotifications(ctx context.Context, b entities.Booking) {
	buyer := lookupUser(ctx, u.users, "settlement", b.BuyerID)
	data := map[string]string{"bookingId": b.ID, "serviceId": b.ServiceID}
	slot := b.StartTime.Format("Mon Jan 2 15:04")

	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateNewBooking, RecipientID: b.MerchantID,
		Title: "New booking", Body: fmt.Sprintf("%s booked for %s.", b.ServiceName, slot), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateBookingConfirmed, RecipientID: buyer.ID,
		Title: "Booking confirmed", Body: fmt.Sprintf("%s on %s.", b.ServiceName, slot), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationEmail, Template: TemplateBookingConfirmed, RecipientID: buyer.ID, Email: buyer.Email,
		Title: "Your booking is confirmed", Body: fmt.Sprintf("%s on %s, %d minutes. Paid %s.", b.ServiceName, slot, b.DurationMinutes, b.FinalPrice.StringFixed(2)), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationPush, Template: TemplateBookingConfirmed, RecipientID: buyer.ID, DeviceToken: buyer.DeviceToken,
		Title: "Booking confirmed", Body: b.ServiceName + " on " + slot, Data: data,
	})
}

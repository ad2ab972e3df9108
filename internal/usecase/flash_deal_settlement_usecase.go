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

var ErrFlashDealNotFound = errors.New("flash deal not found")

const validationCodeLength = 6

type IFlashDealSettlementUseCase interface {
	SettleFlashDeal(ctx context.Context, intent entities.FlashDealIntent, event entities.GatewayEvent) (entities.Reservation, error)
}

type FlashDealSettlementUseCase struct {
	deals           interfaces.IFlashDealRepository
	pendingPayments interfaces.IPendingPaymentRepository
	users           interfaces.IUserRepository
	notify          notifier
	newCode         func() (string, error)
	now             func() time.Time
}

var _ IFlashDealSettlementUseCase = (*FlashDealSettlementUseCase)(nil)

func NewFlashDealSettlementUseCase(deals interfaces.IFlashDealRepository, pendingPayments interfaces.IPendingPaymentRepository, users interfaces.IUserRepository, publisher interfaces.INotificationPublisher) *FlashDealSettlementUseCase {
	return &FlashDealSettlementUseCase{
		deals:           deals,
		pendingPayments: pendingPayments,
		users:           users,
		notify:          notifier{publisher: publisher, area: "settlement"},
		newCode:         func() (string, error) { return generateCode(validationCodeLength) },
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// SettleFlashDeal writes the reservation under its pre-allocated id and takes
// one basket off the deal. The pending payment is consumed in the same write,
// so a redelivered event cannot decrement twice.
func (u *FlashDealSettlementUseCase) SettleFlashDeal(ctx context.Context, intent entities.FlashDealIntent, event entities.GatewayEvent) (entities.Reservation, error) {
	log.Printf("[settlement][flash-deal] start post_id=%s reservation_id=%s event_id=%s", intent.PostID, intent.ReservationID, event.ID)
	if intent.PostID == "" || intent.ReservationID == "" {
		return entities.Reservation{}, fmt.Errorf("%w: postId and reservationId are required", ErrInvalidPurchaseMetadata)
	}
	pending, err := pendingGuard(ctx, u.pendingPayments, "flash-deal", event)
	if err != nil {
		return entities.Reservation{}, err
	}

	deal, err := u.deals.GetFlashDeal(ctx, intent.PostID)
	if err != nil {
		return entities.Reservation{}, err
	}
	if deal.ID == "" {
		log.Printf("[settlement][flash-deal] deal not found post_id=%s", intent.PostID)
		return entities.Reservation{}, ErrFlashDealNotFound
	}

	code, err := u.newCode()
	if err != nil {
		return entities.Reservation{}, err
	}

	reservation := entities.Reservation{
		ID:                 intent.ReservationID,
		BuyerID:            buyerOf(pending, intent.UserID),
		PostID:             deal.ID,
		CompanyID:          deal.CompanyID,
		CompanyName:        deal.CompanyName,
		BasketType:         deal.BasketType,
		Price:              deal.Price,
		Quantity:           1,
		PickupStart:        deal.PickupStart,
		PickupEnd:          deal.PickupEnd,
		PickupAddress:      deal.PickupAddress,
		ValidationCode:     code,
		Status:             entities.ReservationStatusConfirmed,
		PaymentReferenceID: paymentReference(event),
		CreatedAt:          u.now(),
	}

	err = u.deals.CommitReservation(ctx, entities.ReservationSettlement{Reservation: reservation, PendingPaymentID: pending.ID})
	if errors.Is(err, interfaces.ErrPendingPaymentConsumed) || errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[settlement][flash-deal] already settled reservation_id=%s", reservation.ID)
		return entities.Reservation{}, ErrAlreadySettled
	}
	if errors.Is(err, interfaces.ErrPreconditionFailed) {
		log.Printf("[settlement][flash-deal] post removed before commit post_id=%s", deal.ID)
		return entities.Reservation{}, ErrFlashDealNotFound
	}
	if err != nil {
		log.Printf("[settlement][flash-deal] commit failed reservation_id=%s err=%v", reservation.ID, err)
		return entities.Reservation{}, err
	}
	log.Printf("[settlement][flash-deal] commit success reservation_id=%s post_id=%s", reservation.ID, deal.ID)

	u.sendNotifications(ctx, reservation)
	return reservation, nil
}

func (u *FlashDealSettlementUseCase) sendNotifications(ctx context.Context, r entities.Reservation) {
	buyer := lookupUser(ctx, u.users, "settlement", r.BuyerID)
	data := map[string]string{"reservationId": r.ID, "postId": r.PostID}
	window := fmt.Sprintf("%s - %s", r.PickupStart.Format("Jan 2 15:04"), r.PickupEnd.Format("15:04"))

	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateNewReservation, RecipientID: r.CompanyID,
		Title: "New reservation", Body: fmt.Sprintf("A %s basket was reserved.", r.BasketType), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateReservationCreated, RecipientID: buyer.ID,
		Title: "Reservation confirmed", Body: fmt.Sprintf("Pick up at %s, %s. Code %s.", r.PickupAddress, window, r.ValidationCode), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationEmail, Template: TemplateReservationCreated, RecipientID: buyer.ID, Email: buyer.Email,
		Title: "Your reservation at " + r.CompanyName, Body: fmt.Sprintf("Validation code %s. Pickup %s at %s.", r.ValidationCode, window, r.PickupAddress), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationPush, Template: TemplateReservationCreated, RecipientID: buyer.ID, DeviceToken: buyer.DeviceToken,
		Title: "Reservation confirmed", Body: "Your basket at " + r.CompanyName + " is waiting for you.", Data: data,
	})
}

package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

type IFlashDealRepository interface {
	GetFlashDeal(ctx context.Context, postID string) (entities.FlashDeal, error)
	// CommitReservation writes the reservation and decrements basket_count atomically.
	CommitReservation(ctx context.Context, s entities.ReservationSettlement) error
}

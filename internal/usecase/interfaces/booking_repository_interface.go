package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

type IBookingRepository interface {
	CommitBooking(ctx context.Context, s entities.BookingSettlement) error
}

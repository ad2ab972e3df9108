package interfaces

import (
	"context"
	"time"

	"happydeals/internal/domain/entities"
)

// IPendingPaymentRepository persists payment staging records.
type IPendingPaymentRepository interface {
	Create(ctx context.Context, p entities.PendingPayment) error
	GetByID(ctx context.Context, id string) (entities.PendingPayment, error)
	// ScheduleCleanup sets cleanup_after on an existing record; a missing record is not an error.
	ScheduleCleanup(ctx context.Context, id string, at time.Time) error
	ListSweepable(ctx context.Context, now time.Time) ([]entities.PendingPayment, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"log"
	"time"

	"happydeals/internal/usecase/interfaces"
)

// IPendingPaymentSweeper removes staging records that finished their grace
// period or were never paid.
type IPendingPaymentSweeper interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type PendingPaymentSweeper struct {
	pendingPayments interfaces.IPendingPaymentRepository
}

var _ IPendingPaymentSweeper = (*PendingPaymentSweeper)(nil)

func NewPendingPaymentSweeper(pendingPayments interfaces.IPendingPaymentRepository) *PendingPaymentSweeper {
	return &PendingPaymentSweeper{pendingPayments: pendingPayments}
}

// Sweep deletes records whose cleanup_after or expires_at is at or before now.
// A failed delete is logged and retried on the next run.
func (s *PendingPaymentSweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	due, err := s.pendingPayments.ListSweepable(ctx, now)
	if err != nil {
		log.Printf("[sweeper][usecase] list sweepable failed err=%v", err)
		return 0, err
	}
	deleted := 0
	for _, p := range due {
		if err := s.pendingPayments.Delete(ctx, p.ID); err != nil {
			log.Printf("[sweeper][usecase] delete failed id=%s err=%v", p.ID, err)
			continue
		}
		deleted++
	}
	if len(due) > 0 {
		log.Printf("[sweeper][usecase] sweep done due=%d deleted=%d", len(due), deleted)
	}
	return deleted, nil
}

// Run is the cron entry point.
func (s *PendingPaymentSweeper) Run() {
	if _, err := s.Sweep(context.Background(), time.Now().UTC()); err != nil {
		log.Printf("[sweeper][usecase] run failed err=%v", err)
	}
}

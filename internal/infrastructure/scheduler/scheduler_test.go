package scheduler

import (
	"testing"
	"time"
)

func TestScheduler_Start(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := New(
		Job{Name: "sweep", Schedule: "@every 1s", Run: func() {
			select {
			case ran <- struct{}{}:
			default:
			}
		}},
		Job{Name: "broken", Schedule: "not a schedule", Run: func() {}},
	)

	if got := s.Start(); got != 1 {
		t.Fatalf("expected 1 scheduled job, got %d", got)
	}
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatalf("job did not run")
	}
}

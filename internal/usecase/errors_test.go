package usecase

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{nil, ""},
		{ErrUnauthenticated, KindUnauthenticated},
		{fmt.Errorf("%w: missing orderId", ErrInvalidPurchaseMetadata), KindInvalidArgument},
		{ErrPayoutAmountInvalid, KindInvalidArgument},
		{ErrPayoutPermissionDenied, KindPermissionDenied},
		{ErrOrderNotFound, KindNotFound},
		{ErrPayoutAccountNotConfigured, KindFailedPrecondition},
		{fmt.Errorf("commit: %w", ErrLedgerAlreadyCredited), KindFailedPrecondition},
		{errors.New("dynamodb unavailable"), KindInternal},
	}
	for _, tc := range cases {
		name := "nil"
		if tc.err != nil {
			name = tc.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			if got := ErrorKind(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

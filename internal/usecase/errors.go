package usecase

import (
	"errors"

	"happydeals/internal/domain/entities"
)

// Kind classifies use case errors for the transport layer.
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidArgument    Kind = "invalid-argument"
	KindPermissionDenied   Kind = "permission-denied"
	KindNotFound           Kind = "not-found"
	KindFailedPrecondition Kind = "failed-precondition"
	KindInternal           Kind = "internal"
)

var (
	ErrUnauthenticated = errors.New("caller is not authenticated")

	ErrUnsupportedPurchaseType = entities.ErrUnsupportedPurchaseType
	ErrInvalidPurchaseMetadata = entities.ErrInvalidPurchaseMetadata
)

var errorKinds = []struct {
	kind Kind
	errs []error
}{
	{KindUnauthenticated, []error{ErrUnauthenticated}},
	{KindInvalidArgument, []error{
		ErrUnsupportedPurchaseType, ErrInvalidPurchaseMetadata, ErrInvalidAmount, ErrInvalidClientKind,
		ErrMissingSuccessURL, ErrAmountMismatch, ErrInvalidSessionID, ErrInvalidLedgerAmount,
		ErrInvalidLedgerEvent, ErrPayoutAmountInvalid, ErrInvalidOrderStatus, ErrInvalidPickupCode,
		ErrInvalidPendingOrder,
	}},
	{KindPermissionDenied, []error{ErrPendingOrderNotOwned, ErrPayoutPermissionDenied, ErrOrderPermissionDenied}},
	{KindNotFound, []error{
		ErrPendingOrderNotFound, ErrFlashDealNotFound, ErrMerchantNotFound, ErrOrderNotFound,
	}},
	{KindFailedPrecondition, []error{
		ErrPayoutAccountNotConfigured, ErrMerchantEmailMissing, ErrLedgerAlreadyCredited, ErrAlreadySettled,
		ErrOrderAlreadyCompleted, ErrOrderNotReadyForPickup, ErrOrderStatusConflict,
	}},
}

// ErrorKind maps err onto the error taxonomy; anything unknown is internal.
func ErrorKind(err error) Kind {
	if err == nil {
		return ""
	}
	for _, group := range errorKinds {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.kind
			}
		}
	}
	return KindInternal
}

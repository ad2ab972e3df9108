package interfaces

import "errors"

// Conditional-write outcomes reported by repositories. Use cases translate
// them into their own sentinels.
var (
	// ErrVersionConflict: a record changed since it was read.
	ErrVersionConflict = errors.New("version conflict")
	// ErrAlreadyExists: a create-only record is already present.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrPreconditionFailed: a guarded record is missing or in an unexpected state.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrPendingPaymentConsumed: the pending payment was already settled.
	ErrPendingPaymentConsumed = errors.New("pending payment already consumed")
)

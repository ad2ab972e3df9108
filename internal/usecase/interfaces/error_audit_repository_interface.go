package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

// IErrorAuditRepository stores settlement failures for manual reconciliation.
type IErrorAuditRepository interface {
	Record(ctx context.Context, e entities.SettlementError) error
}

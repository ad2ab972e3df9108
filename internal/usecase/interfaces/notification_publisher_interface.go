package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

// INotificationPublisher hands notifications to the delivery workers. Delivery
// is best-effort; callers log failures and move on.
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}

package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

// IOrderRepository covers pending orders, orders, products and carts.
//
// CommitSettlement writes the whole OrderSettlement in one transaction and
// reports ErrVersionConflict when a product moved, ErrPreconditionFailed when
// the pending order is gone, and ErrPendingPaymentConsumed when the payment was
// already settled.
type IOrderRepository interface {
	CreatePendingOrder(ctx context.Context, po entities.PendingOrder) error
	GetPendingOrder(ctx context.Context, id string) (entities.PendingOrder, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	CommitSettlement(ctx context.Context, s entities.OrderSettlement) error
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	// UpdateOrder replaces status fields when the stored status still equals expected.
	UpdateOrder(ctx context.Context, o entities.Order, expected entities.OrderStatus) error
}

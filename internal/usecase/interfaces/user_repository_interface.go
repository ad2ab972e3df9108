package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	SetGatewayCustomerID(ctx context.Context, id, customerID string) error
}

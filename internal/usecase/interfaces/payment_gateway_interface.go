package interfaces

import (
	"context"

	"happydeals/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// The platform collects the full charge; merchant shares are tracked in the
// ledger and paid out with transfers to connected accounts.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, user entities.User) (customerID string, err error)
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.GatewaySession, error)
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.GatewaySession, error)
	IsCheckoutSessionPaid(ctx context.Context, sessionID string) (bool, error)
	CreateTransfer(ctx context.Context, req entities.TransferRequest) (transferID string, err error)
	CreateConnectedAccount(ctx context.Context, req entities.ConnectedAccountRequest) (accountID string, err error)
	CreateAccountOnboardingLink(ctx context.Context, req entities.AccountLinkRequest) (url string, err error)
	CreateDashboardLink(ctx context.Context, accountID string) (url string, err error)
	// ConstructEvent verifies the signature with the channel's secret and decodes the event.
	ConstructEvent(payload []byte, signature string, channel entities.WebhookChannel) (entities.GatewayEvent, error)
}

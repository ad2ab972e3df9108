package entities

// Gateway event types the dispatcher acts on.
const (
	GatewayEventCheckoutCompleted      = "checkout.session.completed"
	GatewayEventPaymentIntentSucceeded = "payment_intent.succeeded"
)

// Object statuses that mean money was captured.
const (
	GatewayStatusCheckoutComplete       = "complete"
	GatewayStatusPaymentIntentSucceeded = "succeeded"
)

// WebhookChannel picks the signing secret used to verify a delivery.
type WebhookChannel string

const (
	WebhookChannelPrimary WebhookChannel = "primary"
	WebhookChannelConnect WebhookChannel = "connect"
)

// GatewayEvent is a verified webhook event reduced to what settlement needs.
//
// ObjectID is the checkout session id or payment intent id, which is also the
// pending payment key. PaymentReferenceID is the payment intent id when known.
type GatewayEvent struct {
	ID                 string
	Type               string
	ObjectID           string
	Status             string
	PaymentReferenceID string
	AmountMinorUnits   int64
	Currency           string
	Metadata           map[string]string
}

// Succeeded reports whether the event object represents captured money.
func (e GatewayEvent) Succeeded() bool {
	switch e.Type {
	case GatewayEventCheckoutCompleted:
		return e.Status == GatewayStatusCheckoutComplete
	case GatewayEventPaymentIntentSucceeded:
		return e.Status == GatewayStatusPaymentIntentSucceeded
	}
	return false
}

type CheckoutSessionRequest struct {
	CustomerID       string
	AmountMinorUnits int64
	Currency         string
	ProductName      string
	SuccessURL       string
	CancelURL        string
	Metadata         map[string]string
}

type PaymentIntentRequest struct {
	CustomerID       string
	AmountMinorUnits int64
	Currency         string
	Metadata         map[string]string
}

// GatewaySession is either a hosted checkout (URL set) or a bare payment intent (ClientSecret set).
type GatewaySession struct {
	ID           string
	URL          string
	ClientSecret string
}

type TransferRequest struct {
	AmountMinorUnits     int64
	Currency             string
	DestinationAccountID string
	IdempotencyKey       string
	Metadata             map[string]string
}

// ConnectedAccountRequest opens an express connected account for a merchant.
type ConnectedAccountRequest struct {
	MerchantID string
	Email      string
	Country    string
}

// AccountLinkRequest asks for a hosted onboarding page for a connected account.
type AccountLinkRequest struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

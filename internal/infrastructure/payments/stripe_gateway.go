package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var (
	ErrMissingStripeSecretKey      = errors.New("missing STRIPE_SECRET_KEY")
	ErrStripeGatewayNotConfigured  = errors.New("stripe gateway not configured")
	ErrWebhookChannelNotConfigured = errors.New("no signing secret configured for webhook channel")
)

type StripeConfig struct {
	SecretKey            string
	WebhookSecret        string
	ConnectWebhookSecret string
	// APIBase points the SDK at another Stripe-compatible API, e.g. a local twin.
	APIBase string
	Mock    bool
}

// StripeGateway talks to Stripe for checkout, payment intents and Connect
// transfers. In mock mode every call succeeds locally; webhook signatures are
// still verified.
type StripeGateway struct {
	api      *client.API
	secrets  map[entities.WebhookChannel]string
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	g := &StripeGateway{
		secrets: map[entities.WebhookChannel]string{
			entities.WebhookChannelPrimary: cfg.WebhookSecret,
			entities.WebhookChannelConnect: cfg.ConnectWebhookSecret,
		},
	}
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		g.mockMode = true
		return g, nil
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	var backends *stripe.Backends
	if cfg.APIBase != "" {
		backendCfg := &stripe.BackendConfig{URL: stripe.String(cfg.APIBase)}
		backends = &stripe.Backends{
			API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendCfg),
			Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendCfg),
		}
	}
	g.api = &client.API{}
	g.api.Init(cfg.SecretKey, backends)
	log.Printf("[payment][gateway] Stripe client initialized api_base=%q", cfg.APIBase)
	return g, nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, user entities.User) (string, error) {
	if g.mockMode {
		return mockID("cus"), nil
	}
	if g.api == nil {
		return "", ErrStripeGatewayNotConfigured
	}
	params := &stripe.CustomerParams{
		Email:    optionalString(user.Email),
		Name:     optionalString(user.DisplayName),
		Metadata: map[string]string{"userId": user.ID},
	}
	params.Context = ctx
	c, err := g.api.Customers.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create customer failed user_id=%s err=%v", user.ID, err)
		return "", err
	}
	log.Printf("[payment][gateway] customer created user_id=%s customer_id=%s", user.ID, c.ID)
	return c.ID, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.GatewaySession, error) {
	if g.mockMode {
		id := mockID("cs")
		log.Printf("[payment][gateway] mock checkout session id=%s amount=%d", id, req.AmountMinorUnits)
		return entities.GatewaySession{ID: id, URL: strings.ReplaceAll(req.SuccessURL, "{CHECKOUT_SESSION_ID}", id)}, nil
	}
	if g.api == nil {
		return entities.GatewaySession{}, ErrStripeGatewayNotConfigured
	}
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer:   optionalString(req.CustomerID),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  optionalString(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.AmountMinorUnits),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.ProductName),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		// Session only: the intent behind it stays untagged so its
		// payment_intent.succeeded event is never settled.
		Metadata: req.Metadata,
	}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create checkout session failed err=%v", err)
		return entities.GatewaySession{}, err
	}
	log.Printf("[payment][gateway] checkout session created id=%s amount=%d", s.ID, req.AmountMinorUnits)
	return entities.GatewaySession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.GatewaySession, error) {
	if g.mockMode {
		id := mockID("pi")
		return entities.GatewaySession{ID: id, ClientSecret: id + "_secret_mock"}, nil
	}
	if g.api == nil {
		return entities.GatewaySession{}, ErrStripeGatewayNotConfigured
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinorUnits),
		Currency: stripe.String(req.Currency),
		Customer: optionalString(req.CustomerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: req.Metadata,
	}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create payment intent failed err=%v", err)
		return entities.GatewaySession{}, err
	}
	log.Printf("[payment][gateway] payment intent created id=%s amount=%d", pi.ID, req.AmountMinorUnits)
	return entities.GatewaySession{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) IsCheckoutSessionPaid(ctx context.Context, sessionID string) (bool, error) {
	if g.mockMode {
		return true, nil
	}
	if g.api == nil {
		return false, ErrStripeGatewayNotConfigured
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		log.Printf("[payment][gateway] get checkout session failed id=%s err=%v", sessionID, err)
		return false, err
	}
	return s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, req entities.TransferRequest) (string, error) {
	if g.mockMode {
		id := mockID("tr")
		log.Printf("[payment][gateway] mock transfer id=%s amount=%d destination=%s", id, req.AmountMinorUnits, req.DestinationAccountID)
		return id, nil
	}
	if g.api == nil {
		return "", ErrStripeGatewayNotConfigured
	}
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(req.AmountMinorUnits),
		Currency:    stripe.String(req.Currency),
		Destination: stripe.String(req.DestinationAccountID),
		Metadata:    req.Metadata,
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	tr, err := g.api.Transfers.New(params)
	if err != nil {
		log.Printf("[payment][gateway] transfer failed destination=%s err=%v", req.DestinationAccountID, err)
		return "", err
	}
	log.Printf("[payment][gateway] transfer created id=%s amount=%d destination=%s", tr.ID, req.AmountMinorUnits, req.DestinationAccountID)
	return tr.ID, nil
}

// CreateConnectedAccount opens an express account able to receive transfers.
func (g *StripeGateway) CreateConnectedAccount(ctx context.Context, req entities.ConnectedAccountRequest) (string, error) {
	if g.mockMode {
		id := mockID("acct")
		log.Printf("[payment][gateway] mock connected account id=%s merchant_id=%s", id, req.MerchantID)
		return id, nil
	}
	if g.api == nil {
		return "", ErrStripeGatewayNotConfigured
	}
	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: optionalString(req.Country),
		Email:   optionalString(req.Email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
		Metadata: map[string]string{"merchantId": req.MerchantID},
	}
	params.Context = ctx
	params.SetIdempotencyKey("connect-account-" + req.MerchantID)
	acct, err := g.api.Accounts.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create connected account failed merchant_id=%s err=%v", req.MerchantID, err)
		return "", err
	}
	log.Printf("[payment][gateway] connected account created merchant_id=%s account_id=%s", req.MerchantID, acct.ID)
	return acct.ID, nil
}

func (g *StripeGateway) CreateAccountOnboardingLink(ctx context.Context, req entities.AccountLinkRequest) (string, error) {
	if g.mockMode {
		return req.ReturnURL, nil
	}
	if g.api == nil {
		return "", ErrStripeGatewayNotConfigured
	}
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(req.AccountID),
		RefreshURL: stripe.String(req.RefreshURL),
		ReturnURL:  stripe.String(req.ReturnURL),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	}
	params.Context = ctx
	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create account link failed account_id=%s err=%v", req.AccountID, err)
		return "", err
	}
	return link.URL, nil
}

func (g *StripeGateway) CreateDashboardLink(ctx context.Context, accountID string) (string, error) {
	if g.mockMode {
		return "https://connect.stripe.test/express/" + accountID, nil
	}
	if g.api == nil {
		return "", ErrStripeGatewayNotConfigured
	}
	params := &stripe.LoginLinkParams{Account: stripe.String(accountID)}
	params.Context = ctx
	link, err := g.api.LoginLinks.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create login link failed account_id=%s err=%v", accountID, err)
		return "", err
	}
	return link.URL, nil
}

// ConstructEvent verifies the stripe-signature header and reduces the event
// to the fields settlement needs. Unknown event types decode with no object.
func (g *StripeGateway) ConstructEvent(payload []byte, signature string, channel entities.WebhookChannel) (entities.GatewayEvent, error) {
	secret := g.secrets[channel]
	if secret == "" {
		return entities.GatewayEvent{}, fmt.Errorf("%w: %s", ErrWebhookChannelNotConfigured, channel)
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.GatewayEvent{}, err
	}

	out := entities.GatewayEvent{ID: ev.ID, Type: string(ev.Type)}
	if ev.Data == nil {
		return out, nil
	}
	switch out.Type {
	case entities.GatewayEventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return entities.GatewayEvent{}, fmt.Errorf("decode checkout session: %w", err)
		}
		out.ObjectID = s.ID
		out.Status = string(s.Status)
		out.AmountMinorUnits = s.AmountTotal
		out.Currency = string(s.Currency)
		out.Metadata = s.Metadata
		if s.PaymentIntent != nil {
			out.PaymentReferenceID = s.PaymentIntent.ID
		}
	case entities.GatewayEventPaymentIntentSucceeded:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return entities.GatewayEvent{}, fmt.Errorf("decode payment intent: %w", err)
		}
		out.ObjectID = pi.ID
		out.Status = string(pi.Status)
		out.AmountMinorUnits = pi.Amount
		out.Currency = string(pi.Currency)
		out.Metadata = pi.Metadata
		out.PaymentReferenceID = pi.ID
	}
	return out, nil
}

func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return stripe.String(s)
}

func mockID(prefix string) string {
	return fmt.Sprintf("%s_mock_%d", prefix, time.Now().UTC().UnixNano())
}

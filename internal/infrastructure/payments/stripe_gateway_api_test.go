package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"happydeals/internal/domain/entities"
)

type recordedCall struct {
	method string
	path   string
	form   url.Values
}

// newStripeAPI serves canned Stripe objects and records every request form.
func newStripeAPI(t *testing.T) (*StripeGateway, func() []recordedCall) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []recordedCall
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		mu.Lock()
		calls = append(calls, recordedCall{method: r.Method, path: r.URL.Path, form: r.PostForm})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/v1/checkout/sessions":
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.test/cs_test_1"}`))
		case r.URL.Path == "/v1/accounts":
			_, _ = w.Write([]byte(`{"id":"acct_test_1","object":"account"}`))
		case r.URL.Path == "/v1/account_links":
			_, _ = w.Write([]byte(`{"object":"account_link","url":"https://connect.stripe.test/setup/acct_test_1"}`))
		case strings.HasSuffix(r.URL.Path, "/login_links"):
			_, _ = w.Write([]byte(`{"object":"login_link","url":"https://connect.stripe.test/express/acct_test_1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"unknown path"}}`))
		}
	}))
	t.Cleanup(srv.Close)

	g, err := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123", WebhookSecret: testWebhookSecret, APIBase: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g, func() []recordedCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedCall(nil), calls...)
	}
}

func TestStripeGateway_CheckoutSessionTagsOnlyTheSession(t *testing.T) {
	g, calls := newStripeAPI(t)

	s, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutSessionRequest{
		CustomerID:       "cus_1",
		AmountMinorUnits: 499,
		Currency:         "eur",
		ProductName:      "Flash deal basket",
		SuccessURL:       "https://app.test/done?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:        "https://app.test/cancel",
		Metadata:         map[string]string{"type": "flash_deal", "postId": "post-1", "reservationId": "res-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "cs_test_1" || s.URL == "" {
		t.Fatalf("unexpected session: %+v", s)
	}

	recorded := calls()
	if len(recorded) != 1 || recorded[0].path != "/v1/checkout/sessions" {
		t.Fatalf("unexpected calls: %+v", recorded)
	}
	form := recorded[0].form
	if form.Get("metadata[type]") != "flash_deal" || form.Get("metadata[reservationId]") != "res-1" {
		t.Fatalf("session metadata missing: %v", form)
	}
	for key := range form {
		if strings.HasPrefix(key, "payment_intent_data[metadata]") {
			t.Fatalf("payment intent must stay untagged, found %s", key)
		}
	}
	if form.Get("line_items[0][price_data][unit_amount]") != "499" {
		t.Fatalf("unexpected amount: %v", form)
	}
}

func TestStripeGateway_ConnectOnboarding(t *testing.T) {
	g, calls := newStripeAPI(t)
	ctx := context.Background()

	acct, err := g.CreateConnectedAccount(ctx, entities.ConnectedAccountRequest{MerchantID: "m1", Email: "shop@test", Country: "FR"})
	if err != nil || acct != "acct_test_1" {
		t.Fatalf("unexpected account %q err=%v", acct, err)
	}
	link, err := g.CreateAccountOnboardingLink(ctx, entities.AccountLinkRequest{AccountID: acct, RefreshURL: "https://app.test/reauth", ReturnURL: "https://app.test/return"})
	if err != nil || !strings.Contains(link, "/setup/") {
		t.Fatalf("unexpected onboarding link %q err=%v", link, err)
	}
	dash, err := g.CreateDashboardLink(ctx, acct)
	if err != nil || !strings.Contains(dash, "/express/") {
		t.Fatalf("unexpected dashboard link %q err=%v", dash, err)
	}

	recorded := calls()
	if len(recorded) != 3 {
		t.Fatalf("expected 3 calls, got %+v", recorded)
	}
	account := recorded[0].form
	if account.Get("type") != "express" || account.Get("country") != "FR" || account.Get("email") != "shop@test" {
		t.Fatalf("unexpected account form: %v", account)
	}
	if account.Get("capabilities[transfers][requested]") != "true" || account.Get("capabilities[card_payments][requested]") != "true" {
		t.Fatalf("missing capabilities: %v", account)
	}
	if recorded[1].form.Get("type") != "account_onboarding" || recorded[1].form.Get("account") != "acct_test_1" {
		t.Fatalf("unexpected account link form: %v", recorded[1].form)
	}
	if recorded[2].path != "/v1/accounts/acct_test_1/login_links" {
		t.Fatalf("unexpected login link path: %s", recorded[2].path)
	}
}

func TestStripeGateway_MockModeOnboarding(t *testing.T) {
	g := newMockGateway(t)
	ctx := context.Background()

	acct, err := g.CreateConnectedAccount(ctx, entities.ConnectedAccountRequest{MerchantID: "m1"})
	if err != nil || !strings.HasPrefix(acct, "acct_mock_") {
		t.Fatalf("unexpected account %q err=%v", acct, err)
	}
	link, err := g.CreateAccountOnboardingLink(ctx, entities.AccountLinkRequest{AccountID: acct, ReturnURL: "https://app.test/return"})
	if err != nil || link != "https://app.test/return" {
		t.Fatalf("unexpected link %q err=%v", link, err)
	}
	if dash, err := g.CreateDashboardLink(ctx, acct); err != nil || !strings.HasSuffix(dash, acct) {
		t.Fatalf("unexpected dashboard link %q err=%v", dash, err)
	}
}

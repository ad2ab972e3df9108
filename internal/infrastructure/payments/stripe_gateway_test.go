package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"happydeals/internal/domain/entities"
)

const testWebhookSecret = "whsec_test"

func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.", ts)))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func newMockGateway(t *testing.T) *StripeGateway {
	t.Helper()
	g, err := NewStripeGateway(StripeConfig{WebhookSecret: testWebhookSecret, Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewStripeGateway_RequiresSecretKey(t *testing.T) {
	if _, err := NewStripeGateway(StripeConfig{WebhookSecret: testWebhookSecret}); !errors.Is(err, ErrMissingStripeSecretKey) {
		t.Fatalf("expected ErrMissingStripeSecretKey, got %v", err)
	}
}

func TestStripeGateway_ConstructEvent(t *testing.T) {
	checkout := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{` +
		`"id":"cs_1","object":"checkout.session","status":"complete","amount_total":2490,"currency":"eur",` +
		`"payment_intent":"pi_1","metadata":{"type":"order","orderId":"po-1"}}}}`)
	intent := []byte(`{"id":"evt_2","object":"event","type":"payment_intent.succeeded","data":{"object":{` +
		`"id":"pi_2","object":"payment_intent","status":"succeeded","amount":1500,"currency":"eur",` +
		`"metadata":{"type":"flash_deal","postId":"post-1","reservationId":"res-1"}}}}`)

	t.Run("checkout session", func(t *testing.T) {
		g := newMockGateway(t)
		ev, err := g.ConstructEvent(checkout, signPayload(checkout, testWebhookSecret), entities.WebhookChannelPrimary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.ID != "evt_1" || ev.ObjectID != "cs_1" || ev.PaymentReferenceID != "pi_1" || ev.AmountMinorUnits != 2490 {
			t.Fatalf("unexpected event: %+v", ev)
		}
		if !ev.Succeeded() || ev.Metadata["orderId"] != "po-1" {
			t.Fatalf("expected paid order event, got %+v", ev)
		}
	})

	t.Run("payment intent", func(t *testing.T) {
		g := newMockGateway(t)
		ev, err := g.ConstructEvent(intent, signPayload(intent, testWebhookSecret), entities.WebhookChannelPrimary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.ObjectID != "pi_2" || ev.PaymentReferenceID != "pi_2" || !ev.Succeeded() {
			t.Fatalf("unexpected event: %+v", ev)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		g := newMockGateway(t)
		if _, err := g.ConstructEvent(checkout, signPayload(checkout, "whsec_other"), entities.WebhookChannelPrimary); err == nil {
			t.Fatalf("expected signature error")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		g := newMockGateway(t)
		sig := signPayload(checkout, testWebhookSecret)
		tampered := []byte(strings.Replace(string(checkout), "2490", "1", 1))
		if _, err := g.ConstructEvent(tampered, sig, entities.WebhookChannelPrimary); err == nil {
			t.Fatalf("expected signature error")
		}
	})

	t.Run("connect channel without secret", func(t *testing.T) {
		g := newMockGateway(t)
		_, err := g.ConstructEvent(checkout, signPayload(checkout, testWebhookSecret), entities.WebhookChannelConnect)
		if !errors.Is(err, ErrWebhookChannelNotConfigured) {
			t.Fatalf("expected ErrWebhookChannelNotConfigured, got %v", err)
		}
	})
}

func TestStripeGateway_MockMode(t *testing.T) {
	g := newMockGateway(t)
	ctx := context.Background()

	s, err := g.CreateCheckoutSession(ctx, entities.CheckoutSessionRequest{
		AmountMinorUnits: 100,
		SuccessURL:       "https://app.test/done?session_id={CHECKOUT_SESSION_ID}",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(s.ID, "cs_mock_") || !strings.HasSuffix(s.URL, s.ID) {
		t.Fatalf("unexpected mock session: %+v", s)
	}

	pi, err := g.CreatePaymentIntent(ctx, entities.PaymentIntentRequest{AmountMinorUnits: 100})
	if err != nil || pi.ClientSecret == "" {
		t.Fatalf("expected client secret, got %+v err=%v", pi, err)
	}

	paid, err := g.IsCheckoutSessionPaid(ctx, s.ID)
	if err != nil || !paid {
		t.Fatalf("mock sessions are always paid, got %v err=%v", paid, err)
	}

	tr, err := g.CreateTransfer(ctx, entities.TransferRequest{AmountMinorUnits: 100, DestinationAccountID: "acct_1"})
	if err != nil || !strings.HasPrefix(tr, "tr_mock_") {
		t.Fatalf("unexpected transfer id %q err=%v", tr, err)
	}
}

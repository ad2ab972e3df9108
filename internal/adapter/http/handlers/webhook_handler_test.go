package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"happydeals/internal/adapter/http/handlers/mocks"
	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := `{"id":"evt_1","type":"checkout.session.completed"}`

	tests := []struct {
		name     string
		path     string
		channel  entities.WebhookChannel
		err      error
		wantCode int
		wantBody string
	}{
		{"acknowledged", "/stripeWebhook", entities.WebhookChannelPrimary, nil, http.StatusOK, `{"received":true}`},
		{"connect channel", "/stripeConnectWebhook", entities.WebhookChannelConnect, nil, http.StatusOK, `{"received":true}`},
		{"bad signature", "/stripeWebhook", entities.WebhookChannelPrimary, fmt.Errorf("%w: no v1", usecase.ErrInvalidSignature), http.StatusBadRequest, "Webhook Error: "},
		{"other errors still acknowledged", "/stripeWebhook", entities.WebhookChannelPrimary, errors.New("boom"), http.StatusOK, `{"received":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIWebhookUseCase(ctrl)
			h := NewWebhookHandler(uc)

			r := gin.New()
			r.POST("/stripeWebhook", h.HandlePrimary)
			r.POST("/stripeConnectWebhook", h.HandleConnect)

			uc.EXPECT().HandleWebhook(gomock.Any(), tt.channel, []byte(payload), "t=1,v1=abc").Return(tt.err)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(payload))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if !strings.HasPrefix(w.Body.String(), tt.wantBody) {
				t.Fatalf("expected body prefix %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

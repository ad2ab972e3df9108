package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"happydeals/internal/adapter/http/dto/response"
	"happydeals/internal/adapter/http/handlers/mocks"
	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_InitiatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IPaymentUseCase) *gin.Engine {
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments", withUser("user-1"), h.InitiatePayment)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).Return(usecase.InitiatePaymentResult{}, usecase.ErrPendingOrderNotOwned)

		body := `{"purchase_type":"order","amount_minor_units":1200,"metadata":{"orderId":"o1"},"success_url":"https://s","cancel_url":"https://c"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.InitiatePaymentCommand) (usecase.InitiatePaymentResult, error) {
				if cmd.OwnerUserID != "user-1" || cmd.PurchaseType != entities.PurchaseTypeBooking {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.ClientKind != entities.ClientKindNative || cmd.Metadata["bookingId"] != "b1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.InitiatePaymentResult{SessionOrIntentID: "pi_1", ClientSecret: "pi_1_secret"}, nil
			})

		body := `{"purchase_type":"booking","amount_minor_units":5000,"client_kind":"native","metadata":{"bookingId":"b1","serviceId":"s1"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.InitiatePaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.ID != "pi_1" || res.ClientSecret != "pi_1_secret" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestPaymentHandler_GetCheckoutStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:session_id/status", h.GetCheckoutStatus)

	uc.EXPECT().GetCheckoutStatus(gomock.Any(), "cs_1").Return(true, nil)
	uc.EXPECT().GetCheckoutStatus(gomock.Any(), "bad").Return(false, usecase.ErrInvalidSessionID)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/cs_1/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res response.CheckoutStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || !res.Paid || res.SessionID != "cs_1" {
		t.Fatalf("unexpected response: %+v err=%v", res, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/payments/bad/status", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

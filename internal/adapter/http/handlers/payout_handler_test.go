package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"happydeals/internal/adapter/http/handlers/mocks"
	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPayoutHandler_RequestPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	amount := decimal.RequireFromString("40.25")
	tests := []struct {
		name     string
		body     string
		setup    func(uc *mocks.MockIPayoutUseCase)
		wantCode int
	}{
		{"bad json", `{`, func(*mocks.MockIPayoutUseCase) {}, http.StatusBadRequest},
		{"bad amount", `{"merchant_id":"m1","amount":"lots"}`, func(*mocks.MockIPayoutUseCase) {}, http.StatusBadRequest},
		{
			name: "amount above balance",
			body: `{"merchant_id":"m1","amount":"40.25"}`,
			setup: func(uc *mocks.MockIPayoutUseCase) {
				uc.EXPECT().RequestPayout(gomock.Any(), "m1", amount, "m1").Return(entities.Payout{}, usecase.ErrPayoutAmountInvalid)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "no connected account",
			body: `{"merchant_id":"m1","amount":"40.25"}`,
			setup: func(uc *mocks.MockIPayoutUseCase) {
				uc.EXPECT().RequestPayout(gomock.Any(), "m1", amount, "m1").Return(entities.Payout{}, usecase.ErrPayoutAccountNotConfigured)
			},
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name: "success",
			body: `{"merchant_id":"m1","amount":"40.25"}`,
			setup: func(uc *mocks.MockIPayoutUseCase) {
				uc.EXPECT().RequestPayout(gomock.Any(), "m1", amount, "m1").Return(entities.Payout{
					ID: "po-1", MerchantID: "m1", Amount: amount, Status: entities.PayoutStatusCompleted, TransferID: "tr_1", CreatedAt: time.Now().UTC(),
				}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPayoutUseCase(ctrl)
			tt.setup(uc)
			h := NewPayoutHandler(uc)

			r := gin.New()
			r.POST("/v1/payouts", withUser("m1"), h.RequestPayout)

			req := httptest.NewRequest(http.MethodPost, "/v1/payouts", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

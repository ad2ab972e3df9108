package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"happydeals/internal/adapter/http/dto/response"
	"happydeals/internal/adapter/http/handlers/mocks"
	"happydeals/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOnboardingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	link := usecase.OnboardingLink{AccountID: "acct_1", URL: "https://connect.test/onboard"}
	tests := []struct {
		name     string
		path     string
		setup    func(uc *mocks.MockIMerchantOnboardingUseCase)
		wantCode int
	}{
		{
			name: "start onboarding",
			path: "/v1/payouts/account",
			setup: func(uc *mocks.MockIMerchantOnboardingUseCase) {
				uc.EXPECT().StartOnboarding(gomock.Any(), "m1").Return(link, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "merchant without email",
			path: "/v1/payouts/account",
			setup: func(uc *mocks.MockIMerchantOnboardingUseCase) {
				uc.EXPECT().StartOnboarding(gomock.Any(), "m1").Return(usecase.OnboardingLink{}, usecase.ErrMerchantEmailMissing)
			},
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name: "onboarding link",
			path: "/v1/payouts/account/link",
			setup: func(uc *mocks.MockIMerchantOnboardingUseCase) {
				uc.EXPECT().CreateOnboardingLink(gomock.Any(), "m1").Return(link, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "dashboard without account",
			path: "/v1/payouts/account/dashboard",
			setup: func(uc *mocks.MockIMerchantOnboardingUseCase) {
				uc.EXPECT().CreateDashboardLink(gomock.Any(), "m1").Return(usecase.OnboardingLink{}, usecase.ErrPayoutAccountNotConfigured)
			},
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name: "unknown merchant",
			path: "/v1/payouts/account/dashboard",
			setup: func(uc *mocks.MockIMerchantOnboardingUseCase) {
				uc.EXPECT().CreateDashboardLink(gomock.Any(), "m1").Return(usecase.OnboardingLink{}, usecase.ErrMerchantNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIMerchantOnboardingUseCase(ctrl)
			tt.setup(uc)
			h := NewOnboardingHandler(uc)

			r := gin.New()
			r.POST("/v1/payouts/account", withUser("m1"), h.StartOnboarding)
			r.POST("/v1/payouts/account/link", withUser("m1"), h.CreateOnboardingLink)
			r.POST("/v1/payouts/account/dashboard", withUser("m1"), h.CreateDashboardLink)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if w.Code == http.StatusOK {
				var body response.OnboardingLinkResponse
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid body: %v", err)
				}
				if body != (response.OnboardingLinkResponse{AccountID: "acct_1", URL: "https://connect.test/onboard"}) {
					t.Fatalf("unexpected body: %+v", body)
				}
			}
		})
	}
}

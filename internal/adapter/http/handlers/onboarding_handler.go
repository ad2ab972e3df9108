package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"happydeals/internal/adapter/http/dto/response"
	"happydeals/internal/adapter/http/middleware"
	"happydeals/internal/usecase"
)

// OnboardingHandler serves the connected payout account flow. The caller is
// always the merchant being onboarded.
type OnboardingHandler struct {
	usecase usecase.IMerchantOnboardingUseCase
}

func NewOnboardingHandler(uc usecase.IMerchantOnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{usecase: uc}
}

// StartOnboarding godoc
// @Summary Create the merchant's connected payout account and return an onboarding link
// @Tags payouts
// @Produce json
// @Security Bearer
// @Success 200 {object} response.OnboardingLinkResponse
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 412 {object} pkg.HTTPError
// @Router /v1/payouts/account [post]
func (h *OnboardingHandler) StartOnboarding(c *gin.Context) {
	h.respond(c, "start onboarding", h.usecase.StartOnboarding)
}

// CreateOnboardingLink godoc
// @Summary Return a fresh onboarding link for the merchant's connected account
// @Tags payouts
// @Produce json
// @Security Bearer
// @Success 200 {object} response.OnboardingLinkResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 412 {object} pkg.HTTPError
// @Router /v1/payouts/account/link [post]
func (h *OnboardingHandler) CreateOnboardingLink(c *gin.Context) {
	h.respond(c, "onboarding link", h.usecase.CreateOnboardingLink)
}

// CreateDashboardLink godoc
// @Summary Return a login link to the connected account dashboard
// @Tags payouts
// @Produce json
// @Security Bearer
// @Success 200 {object} response.OnboardingLinkResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 412 {object} pkg.HTTPError
// @Router /v1/payouts/account/dashboard [post]
func (h *OnboardingHandler) CreateDashboardLink(c *gin.Context) {
	h.respond(c, "dashboard link", h.usecase.CreateDashboardLink)
}

func (h *OnboardingHandler) respond(c *gin.Context, action string, fn func(context.Context, string) (usecase.OnboardingLink, error)) {
	uid := middleware.UserID(c)
	link, err := fn(c.Request.Context(), uid)
	if err != nil {
		log.Printf("[payout][handler] %s failed merchant_id=%s err=%v", action, uid, err)
		respondError(c, mapError(err))
		return
	}
	log.Printf("[payout][handler] %s merchant_id=%s account_id=%s", action, uid, link.AccountID)
	c.JSON(http.StatusOK, response.OnboardingLinkResponse{AccountID: link.AccountID, URL: link.URL})
}

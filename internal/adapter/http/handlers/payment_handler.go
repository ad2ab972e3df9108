package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"happydeals/internal/adapter/http/dto/request"
	"happydeals/internal/adapter/http/dto/response"
	"happydeals/internal/adapter/http/middleware"
	"happydeals/internal/usecase"
)

// PaymentHandler handles payment initiation for every purchase type.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitiatePayment godoc
// @Summary Start a payment
// @Description Creates a hosted checkout session (web) or a payment intent (native) and stages a pending payment.
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.InitiatePaymentRequest true "Payment request"
// @Success 200 {object} response.InitiatePaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	uid := middleware.UserID(c)
	var req request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload user_id=%s err=%v", uid, err)
		respondError(c, invalidRequest())
		return
	}

	res, err := h.usecase.InitiatePayment(c.Request.Context(), usecase.InitiatePaymentCommand{
		PurchaseType:     req.ResolvePurchaseType(),
		AmountMinorUnits: req.AmountMinorUnits,
		Metadata:         req.Metadata,
		ClientKind:       req.ResolveClientKind(),
		SuccessURL:       req.SuccessURL,
		CancelURL:        req.CancelURL,
		OwnerUserID:      uid,
	})
	if err != nil {
		log.Printf("[payment][handler] initiate failed user_id=%s type=%s err=%v", uid, req.PurchaseType, err)
		respondError(c, mapError(err))
		return
	}
	log.Printf("[payment][handler] initiate success user_id=%s id=%s", uid, res.SessionOrIntentID)

	c.JSON(http.StatusOK, response.FromInitiatePaymentResult(res))
}

// GetCheckoutStatus godoc
// @Summary Poll a checkout session
// @Tags payments
// @Produce json
// @Security Bearer
// @Param session_id path string true "Checkout session id"
// @Success 200 {object} response.CheckoutStatusResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/payments/{session_id}/status [get]
func (h *PaymentHandler) GetCheckoutStatus(c *gin.Context) {
	sessionID := c.Param("session_id")

	paid, err := h.usecase.GetCheckoutStatus(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[payment][handler] status failed session_id=%s err=%v", sessionID, err)
		respondError(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.CheckoutStatusResponse{SessionID: sessionID, Paid: paid})
}

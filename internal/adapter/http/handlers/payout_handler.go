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

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// RequestPayout godoc
// @Summary Transfer available balance to the merchant's connected account
// @Tags payouts
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.PayoutRequest true "Payout"
// @Success 200 {object} response.PayoutResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 412 {object} pkg.HTTPError
// @Router /v1/payouts [post]
func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	uid := middleware.UserID(c)
	var req request.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payout][handler] invalid payload user_id=%s err=%v", uid, err)
		respondError(c, invalidRequest())
		return
	}
	amount, err := req.ResolveAmount()
	if err != nil {
		respondError(c, invalidRequest())
		return
	}

	payout, err := h.usecase.RequestPayout(c.Request.Context(), req.MerchantID, amount, uid)
	if err != nil {
		log.Printf("[payout][handler] request failed merchant_id=%s err=%v", req.MerchantID, err)
		respondError(c, mapError(err))
		return
	}
	log.Printf("[payout][handler] payout completed merchant_id=%s payout_id=%s transfer_id=%s", payout.MerchantID, payout.ID, payout.TransferID)

	c.JSON(http.StatusOK, response.FromPayout(payout))
}

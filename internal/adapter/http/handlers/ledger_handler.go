package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"happydeals/internal/adapter/http/dto/request"
	"happydeals/internal/adapter/http/dto/response"
	"happydeals/internal/usecase"
)

// LedgerHandler accepts order completion events from internal callers.
type LedgerHandler struct {
	usecase usecase.IMerchantLedgerUseCase
}

func NewLedgerHandler(uc usecase.IMerchantLedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

func (h *LedgerHandler) OrderCompleted(c *gin.Context) {
	var req request.OrderCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ledger][handler] invalid completion payload err=%v", err)
		respondError(c, invalidRequest())
		return
	}

	entry, err := h.usecase.OnOrderCompleted(c.Request.Context(), req.ToEvent())
	if err != nil {
		log.Printf("[ledger][handler] credit failed order_id=%s err=%v", req.OrderID, err)
		respondError(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerEntry(entry))
}

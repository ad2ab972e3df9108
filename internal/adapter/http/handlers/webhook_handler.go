package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"happydeals/internal/adapter/http/dto/response"
	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase"
)

const signatureHeader = "Stripe-Signature"

// WebhookHandler receives gateway deliveries. The raw body is passed through
// untouched since the signature covers its exact bytes.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePrimary godoc
// @Summary Payment gateway webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Gateway signature"
// @Success 200 {object} response.WebhookResponse
// @Failure 400 {string} string "Webhook Error"
// @Router /stripeWebhook [post]
func (h *WebhookHandler) HandlePrimary(c *gin.Context) {
	h.handle(c, entities.WebhookChannelPrimary)
}

// HandleConnect godoc
// @Summary Connected-accounts gateway webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Gateway signature"
// @Success 200 {object} response.WebhookResponse
// @Failure 400 {string} string "Webhook Error"
// @Router /stripeConnectWebhook [post]
func (h *WebhookHandler) HandleConnect(c *gin.Context) {
	h.handle(c, entities.WebhookChannelConnect)
}

func (h *WebhookHandler) handle(c *gin.Context, channel entities.WebhookChannel) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed channel=%s err=%v", channel, err)
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	err = h.usecase.HandleWebhook(c.Request.Context(), channel, payload, c.GetHeader(signatureHeader))
	if errors.Is(err, usecase.ErrInvalidSignature) {
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}
	if err != nil {
		// Non-signature failures are acknowledged so the gateway does not retry.
		log.Printf("[webhook][handler] unexpected error channel=%s err=%v", channel, err)
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Received: true})
}

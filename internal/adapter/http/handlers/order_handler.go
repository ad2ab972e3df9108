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

// OrderHandler covers the order lifecycle around settlement: staging the
// pending order before payment and the merchant/buyer transitions after it.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreatePendingOrder godoc
// @Summary Stage an order before payment
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.PendingOrderRequest true "Pending order"
// @Success 201 {object} response.PendingOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/orders/pending [post]
func (h *OrderHandler) CreatePendingOrder(c *gin.Context) {
	uid := middleware.UserID(c)
	var req request.PendingOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] invalid pending order payload user_id=%s err=%v", uid, err)
		respondError(c, invalidRequest())
		return
	}
	items, err := req.ResolveItems()
	if err != nil {
		log.Printf("[order][handler] invalid line items user_id=%s err=%v", uid, err)
		respondError(c, invalidRequest())
		return
	}

	pending, err := h.usecase.CreatePendingOrder(c.Request.Context(), usecase.CreatePendingOrderCommand{
		BuyerID:       uid,
		SellerID:      req.SellerID,
		CartID:        req.CartID,
		PickupAddress: req.PickupAddress,
		Items:         items,
	})
	if err != nil {
		log.Printf("[order][handler] create pending failed user_id=%s err=%v", uid, err)
		respondError(c, mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPendingOrder(pending))
}

// UpdateStatus godoc
// @Summary Move an order to a new status (merchant)
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param order_id path string true "Order id"
// @Param request body request.OrderStatusRequest true "New status"
// @Success 200 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Failure 412 {object} pkg.HTTPError
// @Router /v1/orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	uid := middleware.UserID(c)
	orderID := c.Param("order_id")
	var req request.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] invalid status payload order_id=%s err=%v", orderID, err)
		respondError(c, invalidRequest())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, req.ResolveStatus(), uid)
	if err != nil {
		log.Printf("[order][handler] update status failed order_id=%s status=%s err=%v", orderID, req.Status, err)
		respondError(c, mapError(err))
		return
	}
	log.Printf("[order][handler] status updated order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConfirmPickup godoc
// @Summary Confirm pickup with the code shown by the merchant (buyer)
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param order_id path string true "Order id"
// @Param request body request.PickupRequest true "Pickup code"
// @Success 200 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 412 {object} pkg.HTTPError
// @Router /v1/orders/{order_id}/pickup [post]
func (h *OrderHandler) ConfirmPickup(c *gin.Context) {
	uid := middleware.UserID(c)
	orderID := c.Param("order_id")
	var req request.PickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest())
		return
	}

	order, err := h.usecase.ConfirmPickup(c.Request.Context(), orderID, req.PickupCode, uid)
	if err != nil {
		log.Printf("[order][handler] confirm pickup failed order_id=%s err=%v", orderID, err)
		respondError(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

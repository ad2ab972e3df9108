package routes

import (
	"github.com/gin-gonic/gin"

	"happydeals/internal/adapter/http/handlers"
	"happydeals/internal/adapter/http/middleware"
)

const (
	PathPayments             = "/payments"
	PathOrders               = "/orders"
	PathPayouts              = "/payouts"
	PathStripeWebhook        = "/stripeWebhook"
	PathStripeConnectWebhook = "/stripeConnectWebhook"
)

type routeHandlers struct {
	payment    *handlers.PaymentHandler
	webhook    *handlers.WebhookHandler
	order      *handlers.OrderHandler
	payout     *handlers.PayoutHandler
	onboarding *handlers.OnboardingHandler
	ledger     *handlers.LedgerHandler
}

func addWebhookRoutes(r gin.IRoutes, h *handlers.WebhookHandler, connectEnabled bool) {
	r.POST(PathStripeWebhook, h.HandlePrimary)
	if connectEnabled {
		r.POST(PathStripeConnectWebhook, h.HandleConnect)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h routeHandlers, jwtSecret string) {
	authed := rg.Group("", middleware.RequireAuth(jwtSecret))

	payments := authed.Group(PathPayments)
	{
		payments.POST("", h.payment.InitiatePayment)
		payments.GET("/:session_id/status", h.payment.GetCheckoutStatus)
	}

	orders := authed.Group(PathOrders)
	{
		orders.POST("/pending", h.order.CreatePendingOrder)
		orders.PATCH("/:order_id/status", h.order.UpdateStatus)
		orders.POST("/:order_id/pickup", h.order.ConfirmPickup)
	}

	payouts := authed.Group(PathPayouts)
	{
		payouts.POST("", h.payout.RequestPayout)
		payouts.POST("/account", h.onboarding.StartOnboarding)
		payouts.POST("/account/link", h.onboarding.CreateOnboardingLink)
		payouts.POST("/account/dashboard", h.onboarding.CreateDashboardLink)
	}
}

func addInternalRoutes(rg *gin.RouterGroup, h *handlers.LedgerHandler, apiKey string) {
	rg.Use(middleware.RequireInternalKey(apiKey))
	rg.POST(PathOrders+"/completed", h.OrderCompleted)
}

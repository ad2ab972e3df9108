package routes

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "happydeals/docs"
	"happydeals/internal/adapter/http/handlers"
	"happydeals/internal/adapter/persistence/repository"
	"happydeals/internal/config"
	"happydeals/internal/infrastructure/cache"
	"happydeals/internal/infrastructure/database"
	"happydeals/internal/infrastructure/messaging"
	"happydeals/internal/infrastructure/payments"
	"happydeals/internal/infrastructure/scheduler"
	"happydeals/internal/usecase"
	"happydeals/internal/usecase/interfaces"
)

var router = gin.New()

// Run loads configuration, wires dependencies and starts the server.
func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cleanup := getRoutes(cfg)
	defer cleanup()

	err = router.Run(":" + strconv.Itoa(cfg.ServerPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// getRoutes builds the dependency graph and registers every route. The
// returned func releases broker connections and stops background jobs.
func getRoutes(cfg *config.Config) func() {
	ctx := context.Background()

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	gateway, err := payments.NewStripeGateway(payments.StripeConfig{
		SecretKey:            cfg.StripeSecretKey,
		WebhookSecret:        cfg.StripeWebhookSecret,
		ConnectWebhookSecret: cfg.StripeConnectWebhookSecret,
		APIBase:              cfg.StripeAPIBase,
		Mock:                 cfg.GatewayMockEnabled(),
	})
	if err != nil {
		log.Fatalf("Failed to configure payment gateway: %v", err)
	}

	feePercent, err := cfg.FeePercent()
	if err != nil {
		log.Fatalf("Invalid platform fee: %v", err)
	}

	var dedup interfaces.IEventDeduplicator
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Printf("Redis unavailable, webhook dedup disabled: %v", err)
	} else if redisClient != nil {
		dedup = cache.NewRedisEventDeduplicator(redisClient, "", 0)
	}

	publisher, closePublisher := messaging.NewNotificationPublisher(cfg.RabbitMQURL, cfg.NotificationExchange)

	userRepo := repository.NewUserDynamoRepository(ddb)
	pendingPaymentRepo := repository.NewPendingPaymentDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	flashDealRepo := repository.NewFlashDealDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	merchantRepo := repository.NewMerchantDynamoRepository(ddb)
	loyaltyRepo := repository.NewLoyaltyDynamoRepository(ddb)
	auditRepo := repository.NewErrorAuditDynamoRepository(ddb)

	ledgerUseCase := usecase.NewMerchantLedgerUseCase(merchantRepo, loyaltyRepo, usecase.NewLoyaltyEngine(), publisher, feePercent)
	paymentUseCase := usecase.NewPaymentUseCase(gateway, userRepo, pendingPaymentRepo, orderRepo, cfg.PaymentCurrency, cfg.PendingPaymentMaxAge)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, userRepo, ledgerUseCase, publisher, cfg.PaymentCurrency)
	payoutUseCase := usecase.NewPayoutUseCase(gateway, merchantRepo, cfg.PaymentCurrency)
	onboardingUseCase := usecase.NewMerchantOnboardingUseCase(gateway, merchantRepo, usecase.OnboardingURLs{
		RefreshURL: cfg.ConnectRefreshURL,
		ReturnURL:  cfg.ConnectReturnURL,
	}, cfg.ConnectAccountCountry)
	webhookUseCase := usecase.NewWebhookUseCase(usecase.WebhookDeps{
		Gateway:         gateway,
		Deduplicator:    dedup,
		PendingPayments: pendingPaymentRepo,
		Audit:           auditRepo,
		Publisher:       publisher,
		Orders:          usecase.NewOrderSettlementUseCase(orderRepo, pendingPaymentRepo, userRepo, publisher),
		FlashDeals:      usecase.NewFlashDealSettlementUseCase(flashDealRepo, pendingPaymentRepo, userRepo, publisher),
		Bookings:        usecase.NewBookingSettlementUseCase(bookingRepo, loyaltyRepo, pendingPaymentRepo, userRepo, publisher),
		CleanupDelay:    cfg.PendingPaymentCleanupDelay,
	})

	sweeper := usecase.NewPendingPaymentSweeper(pendingPaymentRepo)
	jobs := scheduler.New(scheduler.Job{
		Name:     "pending-payment-sweep",
		Schedule: cfg.PendingPaymentSweepSchedule,
		Run:      sweeper.Run,
	})
	jobs.Start()

	h := routeHandlers{
		payment:    handlers.NewPaymentHandler(paymentUseCase),
		webhook:    handlers.NewWebhookHandler(webhookUseCase),
		order:      handlers.NewOrderHandler(orderUseCase),
		payout:     handlers.NewPayoutHandler(payoutUseCase),
		onboarding: handlers.NewOnboardingHandler(onboardingUseCase),
		ledger:     handlers.NewLedgerHandler(ledgerUseCase),
	}

	// Webhooks authenticate by signature and live outside /v1
	addWebhookRoutes(router, h.webhook, cfg.StripeConnectWebhookSecret != "")

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h, cfg.AuthJWTSecret)

	addInternalRoutes(router.Group("/internal"), h.ledger, cfg.InternalAPIKey)

	return func() {
		<-jobs.Stop().Done()
		closePublisher()
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

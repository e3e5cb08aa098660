package routes

import (
	"log"
	"net/http"
	"strconv"

	_ "woodcraft/docs" // swagger doc registration
	"woodcraft/internal/adapter/http/handlers"
	"woodcraft/internal/adapter/http/middleware"
	"woodcraft/internal/adapter/persistence/repository"
	"woodcraft/internal/config"
	"woodcraft/internal/infrastructure/database"
	"woodcraft/internal/infrastructure/generation"
	"woodcraft/internal/infrastructure/metrics"
	"woodcraft/internal/infrastructure/payments"
	"woodcraft/internal/usecase"
	"woodcraft/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type handlerSet struct {
	design          *handlers.DesignHandler
	customerDesigns *handlers.CustomerDesignHandler
	payments        *handlers.BillingPaymentHandler
	metrics         http.Handler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := newRouter(cfg, buildHandlers(cfg, metrics.New()))

	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func buildHandlers(cfg *config.Config, m *metrics.Metrics) handlerSet {
	ddb := database.ConnectDynamoDB(cfg.AWS)
	designRepo := repository.NewCustomerDesignDynamoRepository(ddb, cfg.DesignsTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	if cfg.Generation.APIKey == "" {
		log.Printf("TRIPO_API_KEY not set; design generation requests will fail until it is configured")
	}
	generator := generation.NewClient(generation.ConfigFrom(cfg.Generation), generation.WithRecorder(m))
	estimator := usecase.NewPricingEstimator()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	workflowUseCase := usecase.NewDesignWorkflowUseCase(generator, estimator, m)
	designUseCase := usecase.NewCustomerDesignUseCase(designRepo, estimator, generator)
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, designRepo, paymentGateway, usecase.PaymentSettings{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.TestPayerEmail,
		TestPayerUserID: cfg.TestPayerUserID,
	})

	return handlerSet{
		design:          handlers.NewDesignHandler(workflowUseCase),
		customerDesigns: handlers.NewCustomerDesignHandler(designUseCase),
		payments:        handlers.NewBillingPaymentHandler(paymentUseCase),
		metrics:         m.Handler(),
	}
}

func newRouter(cfg *config.Config, hs handlerSet) *gin.Engine {
	router := gin.New()
	// Without trusted proxies ClientIP is the peer address, so a forged
	// X-Forwarded-For cannot pick a fresh rate limit bucket.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(hs.metrics))

	limiter := middleware.NewRateLimiter(cfg.GenerationRateLimit, cfg.GenerationRateBurst)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDesignRoutes(v1, hs.design, limiter.Middleware())
	addCustomerDesignRoutes(v1, hs.customerDesigns)
	addBillingRoutes(v1, hs.payments)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

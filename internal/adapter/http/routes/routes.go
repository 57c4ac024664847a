package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "fundilink/docs" // swag-generated documentation
	"fundilink/internal/adapter/http/handlers"
	"fundilink/internal/adapter/http/middleware"
	"fundilink/internal/adapter/persistence/repository"
	"fundilink/internal/infrastructure/auth"
	"fundilink/internal/infrastructure/database"
	"fundilink/internal/infrastructure/payments"
	"fundilink/internal/ratelimit"
	"fundilink/internal/usecase"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires every dependency and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository.NewJobDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	payoutMethodRepo := repository.NewPayoutMethodDynamoRepository(ddb)

	gateway, err := payments.NewPaystackGateway(os.Getenv("PAYSTACK_SECRET_KEY"))
	if err != nil {
		log.Fatalf("payment gateway not configured: %v", err)
	}

	verifier, err := auth.NewVerifier(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("auth not configured: %v", err)
	}

	node, err := snowflake.NewNode(getenvInt64("SNOWFLAKE_NODE_ID", 1))
	if err != nil {
		log.Fatalf("snowflake node init failed: %v", err)
	}

	defaultCurrency := getenvDefault("DEFAULT_CURRENCY", "KES")
	commissionPercent := getenvFloat("COMMISSION_PERCENT", 10)
	codeTTL := time.Duration(getenvInt64("CODE_EXPIRY_MINUTES", 10)) * time.Minute

	// Per-actor fixed window on payment initiation. Process-local: each
	// instance counts independently, so the effective limit scales with
	// the instance count.
	paymentLimiter := ratelimit.NewFixedWindow(
		int(getenvInt64("RATE_LIMIT_MAX", 10)),
		time.Duration(getenvInt64("RATE_LIMIT_WINDOW_SECONDS", 60))*time.Second,
	)

	jobHandler := handlers.NewJobHandler(usecase.NewJobUseCase(jobRepo))
	quoteHandler := handlers.NewQuoteHandler(usecase.NewQuoteUseCase(jobRepo))
	handshakeHandler := handlers.NewHandshakeHandler(usecase.NewHandshakeUseCase(jobRepo, codeTTL))
	paymentHandler := handlers.NewPaymentHandler(usecase.NewPaymentUseCase(
		jobRepo, paymentRepo, payoutMethodRepo, gateway, node, defaultCurrency, commissionPercent,
	))
	payoutMethodHandler := handlers.NewPayoutMethodHandler(usecase.NewPayoutMethodUseCase(payoutMethodRepo, gateway, commissionPercent))
	splitHandler := handlers.NewSplitHandler(usecase.NewSplitUseCase(gateway, defaultCurrency))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(verifier))
	addMarketplaceRoutes(protected, marketplaceHandlers{
		jobs:          jobHandler,
		quotes:        quoteHandler,
		handshake:     handshakeHandler,
		payments:      paymentHandler,
		payoutMethods: payoutMethodHandler,
		splits:        splitHandler,
	}, paymentLimiter)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Correlation())
	router.Use(corsMiddleware())
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.CorrelationHeader)
	cfg.ExposeHeaders = append(cfg.ExposeHeaders, middleware.CorrelationHeader)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("[config] invalid %s=%q, using default %d", key, v, def)
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("[config] invalid %s=%q, using default %g", key, v, def)
	}
	return def
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vivasaude/vivasaude/config"
	"github.com/vivasaude/vivasaude/pkg/api/handlers"
	custommw "github.com/vivasaude/vivasaude/pkg/api/middleware"
	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/auth"
	"github.com/vivasaude/vivasaude/pkg/billing"
	"github.com/vivasaude/vivasaude/pkg/cache"
	"github.com/vivasaude/vivasaude/pkg/coupons"
	"github.com/vivasaude/vivasaude/pkg/database"
	"github.com/vivasaude/vivasaude/pkg/email"
	"github.com/vivasaude/vivasaude/pkg/jobs"
	"github.com/vivasaude/vivasaude/pkg/metrics"
	custommiddleware "github.com/vivasaude/vivasaude/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // Brute-force protection for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // Signup abuse protection
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // Stripe retries can burst

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Root and health endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "VivaSaúde API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbStatus := "healthy"
		if err := db.Ping(ctx); err != nil {
			dbStatus = "unhealthy"
		}

		redisStatus := "healthy"
		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			redisStatus = "unhealthy"
		}

		status := http.StatusOK
		if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, map[string]any{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize audit logger
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	// Initialize services
	couponService := coupons.NewService(db.Ent)
	billingService := billing.NewService(db.Ent, couponService, &billing.StripeConfig{
		SecretKey:       cfg.StripeSecretKey,
		WebhookSecret:   cfg.StripeWebhookSecret,
		Price50Monthly:  cfg.StripePrice50Monthly,
		Price50Annual:   cfg.StripePrice50Annual,
		Price100Monthly: cfg.StripePrice100Monthly,
		Price100Annual:  cfg.StripePrice100Annual,
		Price500Monthly: cfg.StripePrice500Monthly,
		Price500Annual:  cfg.StripePrice500Annual,
		SuccessURL:      cfg.FrontendURL + "/assinatura?checkout=success",
		CancelURL:       cfg.FrontendURL + "/assinatura?checkout=canceled",
		BaseURL:         cfg.FrontendURL,
	})
	billingService.SetEmailSender(billing.NewEmailServiceAdapter(emailService))
	billingService.SetAuditLogger(billing.NewAuditServiceAdapter(auditLogger))
	billingService.SetMetrics(prometheusMetrics)
	log.Printf("✅ Billing service initialized")

	// Initialize cron manager for maintenance jobs
	cronManager := jobs.NewCronManager(couponService, auditLogger, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, auditLogger, prometheusMetrics)
	couponHandler := handlers.NewCouponHandler(couponService, auditLogger, prometheusMetrics)
	billingHandler := handlers.NewBillingHandler(billingService, prometheusMetrics)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
	}

	// Public pricing catalog
	v1.GET("/pricing", billingHandler.GetPricing)

	// Stripe webhook with higher rate limit
	v1.POST("/webhooks/stripe", billingHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
	{
		// Coupon routes
		couponGroup := protected.Group("/coupons")
		{
			couponGroup.POST("/validate", couponHandler.Validate)
			couponGroup.POST("", couponHandler.Create)
		}

		// Billing routes
		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout", billingHandler.Checkout)
			billingGroup.POST("/price-preview", billingHandler.PricePreview)
		}

		// Admin routes (require admin role)
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(db.Ent))
		{
			adminGroup.GET("/coupons", couponHandler.AdminList)
			adminGroup.POST("/coupons", couponHandler.AdminCreate)
			adminGroup.DELETE("/coupons/:id", couponHandler.AdminRetire)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 VivaSaúde API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: Daily 3AM (retire expired coupons), Weekly Sunday 4AM (prune audit log)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}

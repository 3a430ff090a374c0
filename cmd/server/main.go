package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/billing"
	notificationapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/notification"
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/infrastructure/config"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/infrastructure/logger"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/infrastructure/payment"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/infrastructure/persistence"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/handler"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/middleware"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Ember Panel Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	commissionRepo := persistence.NewGormCommissionRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	requestRepo := persistence.NewGormRequestRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	transactor := persistence.NewGormTransactor(db.DB)

	// Initialize payment gateways
	stripeGateway := payment.NewStripeAdapter()
	paypalGateway, err := payment.NewPayPalAdapter(&payment.PayPalConfig{
		APIBase:   cfg.PayPal.APIBase,
		SendDelay: cfg.PayPal.SendDelay,
	})
	if err != nil {
		log.Fatal("Failed to configure PayPal gateway", zap.Error(err))
	}
	credentialResolver := payment.NewSettingsCredentialResolver(settingsRepo, payment.EnvironmentCredentials{
		StripeSecretKey:    cfg.Stripe.SecretKey,
		PayPalClientID:     cfg.PayPal.ClientID,
		PayPalClientSecret: cfg.PayPal.ClientSecret,
	})

	// Initialize application services
	clientService := panelapp.NewClientService(clientRepo)
	commissionService := panelapp.NewCommissionService(commissionRepo, clientRepo)
	quoteService := panelapp.NewQuoteService(quoteRepo, commissionRepo, clientRepo, notificationRepo, transactor)
	requestService := panelapp.NewRequestService(requestRepo, commissionRepo, notificationRepo)
	productService := panelapp.NewProductService(productRepo)
	settingsService := panelapp.NewSettingsService(settingsRepo)
	notificationService := notificationapp.NewService(notificationRepo, clientRepo)
	invoiceService := billingapp.NewInvoiceService(
		invoiceRepo, clientRepo, settingsRepo,
		stripeGateway, paypalGateway, credentialResolver, log,
	)

	// Rate limiter for the public and API-key surfaces
	rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	defer rateLimiter.Stop()

	// Assemble the HTTP engine
	engine := router.New(router.Config{
		Logger: log,
		Handlers: router.Handlers{
			Client:       handler.NewClientHandler(clientService),
			Commission:   handler.NewCommissionHandler(commissionService),
			Quote:        handler.NewQuoteHandler(quoteService),
			Request:      handler.NewRequestHandler(requestService),
			Invoice:      handler.NewInvoiceHandler(invoiceService),
			Notification: handler.NewNotificationHandler(notificationService),
			Settings:     handler.NewSettingsHandler(settingsService),
			Product:      handler.NewProductHandler(productService),
			Ext:          handler.NewExtHandler(requestService, clientService),
			System:       handler.NewSystemHandler(db.DB),
		},
		SettingsRepo:   settingsRepo,
		RateLimiter:    rateLimiter,
		RequestTimeout: cfg.HTTP.WriteTimeout,
		CORS:           corsConfig(cfg),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// corsConfig builds the CORS policy from config. Origins stay empty
// unless configured, which rejects cross-origin requests.
func corsConfig(cfg *config.Config) *middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	c.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		c.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		c.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return &c
}

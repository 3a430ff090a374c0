package router

import (
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/infrastructure/logger"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/handler"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the route table needs
type Handlers struct {
	Client       *handler.ClientHandler
	Commission   *handler.CommissionHandler
	Quote        *handler.QuoteHandler
	Request      *handler.RequestHandler
	Invoice      *handler.InvoiceHandler
	Notification *handler.NotificationHandler
	Settings     *handler.SettingsHandler
	Product      *handler.ProductHandler
	Ext          *handler.ExtHandler
	System       *handler.SystemHandler
}

// Config carries the router's dependencies
type Config struct {
	Logger         *zap.Logger
	Handlers       Handlers
	SettingsRepo   panel.SettingsRepository
	RateLimiter    *middleware.RateLimiter
	RequestTimeout time.Duration
	CORS           *middleware.CORSConfig
}

// New builds the gin engine with common middleware and the full route
// table. Dashboard routes require the panel identity header, public
// routes sit behind the rate limiter, and /ext routes authenticate with
// a panel API key.
func New(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	if cfg.CORS != nil {
		engine.Use(middleware.CORSWithConfig(*cfg.CORS))
	} else {
		engine.Use(middleware.CORS())
	}
	engine.Use(middleware.Secure())
	if cfg.RequestTimeout > 0 {
		engine.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	h := cfg.Handlers
	api := engine.Group("/api/v1")

	// System routes, unauthenticated
	api.GET("/system/health", h.System.Health)
	api.GET("/system/info", h.System.GetSystemInfo)

	// Public surface behind the rate limiter: quote decisions, the
	// tracking page lookup and the tracked change-request insert
	public := api.Group("")
	public.Use(middleware.RateLimit(cfg.RateLimiter))
	public.POST("/quotes/:id/accept", h.Quote.Accept)
	public.POST("/quotes/:id/reject", h.Quote.Reject)
	public.GET("/public/commissions/:tracking_id/:id", h.Commission.Track)
	public.POST("/public/requests", h.Request.CreatePublic)

	// Dashboard surface, scoped to the authenticated panel
	dashboard := api.Group("")
	dashboard.Use(middleware.RequirePanel())

	dashboard.POST("/clients", h.Client.Create)
	dashboard.GET("/clients", h.Client.List)
	dashboard.GET("/clients/:id", h.Client.GetByID)
	dashboard.PATCH("/clients/:id", h.Client.Update)
	dashboard.DELETE("/clients/:id", h.Client.Delete)

	dashboard.POST("/commissions", h.Commission.Create)
	dashboard.GET("/commissions", h.Commission.List)
	dashboard.GET("/commissions/:id", h.Commission.GetByID)
	dashboard.PATCH("/commissions/:id", h.Commission.Update)
	dashboard.PATCH("/commissions/:id/status", h.Commission.UpdateStatus)
	dashboard.PATCH("/commissions/:id/paid-percent", h.Commission.MarkPaid)
	dashboard.PATCH("/commissions/:id/pin", h.Commission.Pin)
	dashboard.DELETE("/commissions/:id", h.Commission.Delete)

	dashboard.POST("/quotes", h.Quote.Create)
	dashboard.GET("/quotes", h.Quote.List)
	dashboard.GET("/quotes/:id", h.Quote.GetByID)
	dashboard.DELETE("/quotes/:id", h.Quote.Delete)

	dashboard.POST("/requests", h.Request.Create)
	dashboard.GET("/requests", h.Request.List)
	dashboard.GET("/requests/:id", h.Request.GetByID)
	dashboard.PATCH("/requests/:id", h.Request.Update)
	dashboard.PATCH("/requests/:id/status", h.Request.UpdateStatus)
	dashboard.PATCH("/requests/:id/paid", h.Request.MarkPaid)
	dashboard.DELETE("/requests/:id", h.Request.Delete)

	dashboard.POST("/invoices", h.Invoice.IssueStripe)
	dashboard.POST("/invoices/paypal", h.Invoice.IssuePayPal)
	dashboard.GET("/invoices", h.Invoice.List)
	dashboard.GET("/invoices/:id", h.Invoice.GetByID)
	dashboard.POST("/invoices/:id/check", h.Invoice.CheckPayment)
	dashboard.PATCH("/invoices/:id/pin", h.Invoice.Pin)
	dashboard.DELETE("/invoices/:id", h.Invoice.Delete)

	dashboard.GET("/notifications", h.Notification.List)
	dashboard.GET("/notifications/unread-count", h.Notification.UnreadCount)
	dashboard.PATCH("/notifications/:id/read", h.Notification.MarkRead)
	dashboard.DELETE("/notifications/:id", h.Notification.Delete)
	dashboard.DELETE("/notifications", h.Notification.DeleteAll)

	dashboard.GET("/settings", h.Settings.Get)
	dashboard.PATCH("/settings", h.Settings.Update)
	dashboard.PATCH("/settings/provider-keys", h.Settings.UpdateProviderKeys)
	dashboard.POST("/settings/rotate-api-key", h.Settings.RotateAPIKey)

	dashboard.POST("/products", h.Product.Create)
	dashboard.GET("/products", h.Product.List)
	dashboard.GET("/products/:id", h.Product.GetByID)
	dashboard.PATCH("/products/:id", h.Product.Update)
	dashboard.DELETE("/products/:id", h.Product.Delete)

	// API-key surface. The rate limiter runs first so key probing is
	// throttled; the key middleware then spends one API use per call.
	ext := api.Group("/ext")
	ext.Use(middleware.RateLimit(cfg.RateLimiter))
	ext.Use(middleware.APIKeyAuth(cfg.SettingsRepo))
	ext.POST("/requests", h.Ext.CreateRequest)
	ext.GET("/clients", h.Ext.SelectClients)

	return engine
}

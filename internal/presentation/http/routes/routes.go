package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/structurachem/scpl-api/internal/config"
	"github.com/structurachem/scpl-api/internal/presentation/http/handler"
	"github.com/structurachem/scpl-api/internal/presentation/http/middleware"
	"github.com/structurachem/scpl-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Customer   *handler.CustomerHandler
	Product    *handler.ProductHandler
	Quotation  *handler.QuotationHandler
	Invoice    *handler.InvoiceHandler
	Settings   *handler.SettingsHandler
	User       *handler.UserHandler
	Dashboard  *handler.DashboardHandler
	Suggestion *handler.SuggestionHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Suggestions
	protected.POST("/suggestions", h.Suggestion.Suggest)

	registerCustomerRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerQuotationRoutes(protected, h)
	registerInvoiceRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerCustomerRoutes(g *gin.RouterGroup, h *Handlers) {
	customers := g.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.POST("/:id/visits", h.Customer.AddVisit)
	}
}

func registerProductRoutes(g *gin.RouterGroup, h *Handlers) {
	products := g.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.POST("/import", h.Product.Import)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerQuotationRoutes(g *gin.RouterGroup, h *Handlers) {
	quotations := g.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.POST("/:id/submit", h.Quotation.Submit)
		quotations.POST("/:id/status", h.Quotation.UpdateStatus)
		quotations.POST("/:id/invoice", h.Invoice.Generate)
		quotations.GET("/:id/document", h.Quotation.Document)
		quotations.POST("/:id/dispatch", h.Quotation.Dispatch)

		// Unlocking is the only backward workflow edge and is admin only.
		quotations.POST("/:id/unlock", middleware.RequireAdmin(), h.Quotation.Unlock)
	}
}

func registerInvoiceRoutes(g *gin.RouterGroup, h *Handlers) {
	invoices := g.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
		invoices.GET("/:id/document", h.Invoice.Document)
		invoices.POST("/:id/dispatch", h.Invoice.Dispatch)
	}
}

func registerUserRoutes(g *gin.RouterGroup, h *Handlers) {
	users := g.Group("/users", middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

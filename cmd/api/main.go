package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/structurachem/scpl-api/internal/application/service"
	"github.com/structurachem/scpl-api/internal/config"
	"github.com/structurachem/scpl-api/internal/infrastructure/database"
	"github.com/structurachem/scpl-api/internal/infrastructure/repository"
	"github.com/structurachem/scpl-api/internal/presentation/http/handler"
	"github.com/structurachem/scpl-api/internal/presentation/http/routes"
	"github.com/structurachem/scpl-api/pkg/email"
	"github.com/structurachem/scpl-api/pkg/suggest"
	"github.com/structurachem/scpl-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize the suggestion backend; serves canned text when no
	// endpoint is configured.
	suggester := suggest.New(cfg.Suggest.Endpoint, cfg.Suggest.APIKey, cfg.Suggest.Timeout)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	settingsService := service.NewSettingsService(settingsRepo)
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	quotationService := service.NewQuotationService(quotationRepo, customerRepo, productRepo, settingsService)
	invoiceService := service.NewInvoiceService(invoiceRepo, quotationRepo, customerRepo, settingsService)
	documentService := service.NewDocumentService(quotationService, invoiceService, settingsService, emailService)
	userService := service.NewUserService(userRepo, settingsService)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Customer:   handler.NewCustomerHandler(customerService),
		Product:    handler.NewProductHandler(productService),
		Quotation:  handler.NewQuotationHandler(quotationService, documentService),
		Invoice:    handler.NewInvoiceHandler(invoiceService, documentService),
		Settings:   handler.NewSettingsHandler(settingsService),
		User:       handler.NewUserHandler(userService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Suggestion: handler.NewSuggestionHandler(suggester),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

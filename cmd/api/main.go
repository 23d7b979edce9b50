package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/steelwheel/dealership-api/internal/application/service"
	"github.com/steelwheel/dealership-api/internal/config"
	"github.com/steelwheel/dealership-api/internal/infrastructure/database"
	"github.com/steelwheel/dealership-api/internal/infrastructure/repository"
	"github.com/steelwheel/dealership-api/internal/presentation/http/handler"
	"github.com/steelwheel/dealership-api/internal/presentation/http/routes"
	"github.com/steelwheel/dealership-api/pkg/email"
	"github.com/steelwheel/dealership-api/pkg/enrich"
	"github.com/steelwheel/dealership-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the operator account
	if err := database.SeedOperator(db, &cfg.Company); err != nil {
		log.Printf("Warning: Failed to seed operator account: %v", err)
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
	invoiceRepo := repository.NewInvoiceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})

	// Initialize the enricher; nil leaves documents without the sales note
	var enricher enrich.Enricher
	if e := enrich.NewOpenAIEnricher(enrich.Config{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
	}); e != nil {
		enricher = e
	} else {
		log.Println("OpenAI API key not configured, document enrichment disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo)
	customerService := service.NewCustomerService(customerRepo, invoiceRepo)
	documentService := service.NewDocumentService(invoiceRepo, enricher, emailService, cfg.Company.Name)
	mailService := service.NewMailService(emailService)
	dashboardService := service.NewDashboardService(invoiceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Customer:  handler.NewCustomerHandler(customerService),
		Document:  handler.NewDocumentHandler(documentService),
		Mail:      handler.NewMailHandler(mailService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

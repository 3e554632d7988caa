package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"finvault/internal/clock"
	"finvault/internal/config"
	"finvault/internal/handlers"
	"finvault/internal/logger"
	"finvault/internal/middleware"
	"finvault/internal/repos"
	"finvault/internal/services"
	"finvault/internal/store"
	"finvault/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the record store (ensures the data directory and seeds collections)
	st, err := store.Open(appConfig.DataDir, time.Now)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}

	clk := clock.System{}

	// Initialize repositories
	userRepo := repos.NewUserRepo(st)
	cardRepo := repos.NewCardRepo(st)
	transactionRepo := repos.NewTransactionRepo(st)
	savingsRepo := repos.NewSavingsRepo(st)
	reminderRepo := repos.NewReminderRepo(st)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	cardService := services.NewCardService(cardRepo)
	transactionService := services.NewTransactionService(transactionRepo, cardRepo, clk)
	savingsService := services.NewSavingsService(savingsRepo)
	reminderService := services.NewReminderService(reminderRepo, clk)
	dashboardService := services.NewDashboardService(transactionRepo, cardRepo, savingsRepo, reminderRepo, clk)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	cardHandler := handlers.NewCardHandler(cardService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/auth/me", authHandler.GetProfile)

	// Card routes
	cards := protected.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetCards)
	cards.GET("/:id", cardHandler.GetCard)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Savings envelope routes
	savings := protected.Group("/savings-envelopes")
	savings.POST("", savingsHandler.CreateEnvelope)
	savings.GET("", savingsHandler.GetEnvelopes)
	savings.GET("/:id", savingsHandler.GetEnvelope)
	savings.PUT("/:id", savingsHandler.UpdateEnvelope)
	savings.DELETE("/:id", savingsHandler.DeleteEnvelope)
	savings.POST("/:id/add-amount", savingsHandler.AddAmount)

	// Payment reminder routes
	reminders := protected.Group("/payment-reminders")
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.GET("", reminderHandler.GetReminders)
	reminders.GET("/pending", reminderHandler.GetPendingReminders)
	reminders.GET("/overdue", reminderHandler.GetOverdueReminders)
	reminders.GET("/:id", reminderHandler.GetReminder)
	reminders.PUT("/:id", reminderHandler.UpdateReminder)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)
	reminders.PATCH("/:id/mark-paid", reminderHandler.MarkPaid)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/categories", dashboardHandler.GetCategoryBreakdown)

	log.Infof("Starting Finvault backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

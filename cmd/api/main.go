package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/marcelokbc/expense-manager/internal/config"
	"github.com/marcelokbc/expense-manager/internal/handlers"
	"github.com/marcelokbc/expense-manager/internal/logger"
	"github.com/marcelokbc/expense-manager/internal/middleware"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/services"
	"github.com/marcelokbc/expense-manager/internal/store"
	"github.com/marcelokbc/expense-manager/internal/validator"

	_ "github.com/marcelokbc/expense-manager/internal/docs" // Import swagger docs
)

// @title           Expense Manager API
// @version         1.0
// @description     Expense Manager records income/expense transactions and a ledger of baked-goods sales, aggregates them by month and category, and persists everything to a local key-value store.

// @host      localhost:8080
// @BasePath  /api/v1

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

	// Open the persistent key-value store
	storeConfig, err := store.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load store configuration: %w", err)
	}
	db, err := store.Open(storeConfig)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to run store migrations: %w", err)
	}

	// Static start-up data
	catalog := models.DefaultCatalog()
	cards := models.DefaultCards()

	// Register custom validators
	validator.Register(catalog)

	// Initialize services: hydrate persisted records, merge seeds
	ledgerService, err := services.NewLedgerService(db, catalog, models.SeedTransactions())
	if err != nil {
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}
	saleService, err := services.NewSaleService(db)
	if err != nil {
		return fmt.Errorf("failed to initialize sales: %w", err)
	}
	investmentService, err := services.NewInvestmentService(db)
	if err != nil {
		return fmt.Errorf("failed to initialize investments: %w", err)
	}
	billingService, err := services.NewBillingService(cards)
	if err != nil {
		return fmt.Errorf("failed to initialize billing: %w", err)
	}

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(ledgerService, catalog)
	saleHandler := handlers.NewSaleHandler(saleService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	cardHandler := handlers.NewCardHandler(billingService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.GET("/summary", transactionHandler.GetSummary)
	v1.GET("/categories", transactionHandler.ListCategories)

	// Sale routes
	salesGroup := v1.Group("/sales")
	salesGroup.GET("", saleHandler.ListGroups)
	salesGroup.GET("/stats", saleHandler.GetStats)
	salesGroup.POST("", saleHandler.CreateSales)
	salesGroup.PUT("/:id", saleHandler.UpdateSale)
	salesGroup.DELETE("/:id", saleHandler.DeleteSale)
	salesGroup.GET("/:id/edit-defaults", saleHandler.GetEditDefaults)

	// Investment routes
	investments := v1.Group("/investments")
	investments.GET("", investmentHandler.ListInvestments)
	investments.GET("/totals", investmentHandler.GetTotals)
	investments.POST("", investmentHandler.CreateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	// Credit card routes
	cardsGroup := v1.Group("/cards")
	cardsGroup.GET("", cardHandler.ListCards)
	cardsGroup.GET("/statement-date", cardHandler.GetStatementDate)

	log.Infof("Starting Expense Manager server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

package main

import (
	"fmt"
	"net/http"
	"os"

	"moneywise/internal/config"
	"moneywise/internal/database"
	"moneywise/internal/handlers"
	"moneywise/internal/logger"
	"moneywise/internal/middleware"
	"moneywise/internal/services"
	"moneywise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "moneywise/internal/docs" // Import swagger docs
)

// @title           MoneyWise API
// @version         1.0
// @description     MoneyWise is a shared budgeting service for recording transactions, splitting budgets with other users, and tracking spend.

// @host      localhost:8000
// @BasePath  /

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

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	labelService := services.NewLabelService(db)
	categoryService := services.NewCategoryService(db)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	labelHandler := handlers.NewLabelHandler(labelService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

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

	// Transaction routes
	txn := router.Group("/txn")
	txn.POST("/create", transactionHandler.Create)
	txn.POST("/filter", transactionHandler.Filter)
	txn.GET("", transactionHandler.ListByCreator)
	txn.GET("/all/:email/:page/:count", transactionHandler.List)
	txn.GET("/spent/:email", transactionHandler.Spent)
	txn.GET("/:id", transactionHandler.GetByID)
	txn.PUT("/update/:id", transactionHandler.Update)
	txn.DELETE("/:id", transactionHandler.Delete)

	// Budget routes
	budget := router.Group("/budget")
	budget.POST("/create", budgetHandler.Create)
	budget.GET("/all/:email", budgetHandler.List)
	budget.GET("/all/:email/:status", budgetHandler.List)
	budget.GET("/stats/:id", budgetHandler.Stats)
	budget.GET("/:id", budgetHandler.GetByID)
	budget.PUT("/update/:id", budgetHandler.Update)
	budget.PUT("/share/:id/:email", budgetHandler.Share)

	// Label routes
	router.GET("/label/all/:email", labelHandler.GetUserTags)

	// Category routes
	router.GET("/category/all", categoryHandler.List)

	log.Infof("Starting MoneyWise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

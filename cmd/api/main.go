package main

import (
	"fmt"
	"net/http"
	"os"

	"lucrum/internal/categories"
	"lucrum/internal/config"
	"lucrum/internal/database"
	"lucrum/internal/handlers"
	"lucrum/internal/logger"
	"lucrum/internal/middleware"
	"lucrum/internal/services"
	"lucrum/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lucrum/internal/docs" // Import swagger docs
)

// @title           Lucrum API
// @version         1.0
// @description     Lucrum is a personal finance dashboard that lets users track income and expenses, set budgets, manage debts, and stay on top of upcoming bills.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	debtService := services.NewDebtService(db)
	billService := services.NewBillService(db)
	insightService := services.NewInsightService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	debtHandler := handlers.NewDebtHandler(debtService)
	billHandler := handlers.NewBillHandler(billService)
	insightHandler := handlers.NewInsightHandler(insightService)
	categoryHandler := handlers.NewCategoryHandler(categories.Default())

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

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.SetBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/alerts", budgetHandler.GetBudgetAlerts)

	// Debt routes
	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/summary", debtHandler.GetDebtSummary)
	debts.PUT("/:id", debtHandler.UpdateDebtAmount)
	debts.POST("/:id/payoff", debtHandler.PayOffDebt)

	// Bill routes
	bills := protected.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.POST("/:id/pay", billHandler.PayBill)

	// Insight routes
	insights := protected.Group("/insights")
	insights.GET("/overview", insightHandler.GetOverview)
	insights.GET("/monthly", insightHandler.GetMonthlyTotals)
	insights.GET("/average-expense", insightHandler.GetAverageMonthlyExpense)
	insights.GET("/top-categories", insightHandler.GetTopCategories)
	insights.GET("/ratio", insightHandler.GetIncomeExpenseRatio)
	insights.GET("/unusual", insightHandler.GetUnusualExpenses)

	// Category vocabulary
	protected.GET("/categories", categoryHandler.GetCategories)

	log.Infof("Starting Lucrum backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

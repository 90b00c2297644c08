package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/handlers"
	"spendtrack/internal/middleware"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	userService := services.NewUserService(userRepo, passwordService, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo, metrics, logger)
	transactionService := services.NewTransactionService(transactionRepo, userRepo, categoryRepo, metrics, logger)
	reportService := services.NewReportService(transactionRepo, userRepo, metrics, logger)

	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	authHandler := handlers.NewAuthHandler(userService, tokenService, cfg.JWT.AccessTokenDuration)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/users", userHandler.CreateUser)

	authed := api.Group("", middleware.RequireAuth(tokenService))

	authed.GET("/users", userHandler.ListUsers)
	authed.GET("/users/:id", userHandler.GetUser)
	authed.PATCH("/users/:id", userHandler.UpdateUser)
	authed.DELETE("/users/:id", userHandler.DeleteUser)
	authed.GET("/users/:id/reports/monthly", reportHandler.MonthlyByCategory)
	authed.GET("/users/:id/reports/daily", reportHandler.DailyRange)

	authed.POST("/categories", categoryHandler.CreateCategory)
	authed.GET("/categories", categoryHandler.ListCategories)
	authed.GET("/categories/:id", categoryHandler.GetCategory)
	authed.PATCH("/categories/:id", categoryHandler.UpdateCategory)
	authed.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	authed.POST("/transactions", transactionHandler.CreateTransaction)
	authed.GET("/transactions", transactionHandler.ListTransactions)
	authed.GET("/transactions/:id", transactionHandler.GetTransaction)
	authed.PATCH("/transactions/:id", transactionHandler.UpdateTransaction)
	authed.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr, "env", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}

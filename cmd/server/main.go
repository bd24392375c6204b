package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poisar-hisap/internal/config"
	"poisar-hisap/internal/database"
	"poisar-hisap/internal/handlers"
	custommw "poisar-hisap/internal/middleware"
	"poisar-hisap/internal/models"
	"poisar-hisap/internal/parser"
	"poisar-hisap/internal/repositories"
	"poisar-hisap/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	parserClient := parser.NewClient(&cfg.Parser)

	expenseRepo := repositories.NewExpenseRepository(db.DB)
	expenseService := services.NewExpenseService(
		expenseRepo,
		parserClient,
		services.NewReviewPolicy(cfg.Review.ConfidenceThreshold),
		services.NewSessionRegistry(),
		metrics,
		cfg.Dashboard.QueryLimit,
	)
	dashboardService := services.NewDashboardService(expenseService, services.NewAggregationService())

	dashboardHandler := handlers.NewDashboardHandler(dashboardService, func(ownerID uuid.UUID) services.DashboardRefresherInterface {
		return services.NewDashboardRefresher(dashboardService, ownerID, models.WindowMonth, cfg.Dashboard.RefreshInterval, metrics)
	})
	expenseHandler := handlers.NewExpenseHandler(expenseService, dashboardHandler)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.NewRateLimiter(cfg.Security.RateLimitPerSecond).Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, custommw.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", custommw.RequireAuth(tokenService, metrics))
	api.POST("/expenses/parse", expenseHandler.ParseExpense)
	api.POST("/expenses", expenseHandler.SaveExpense)
	api.GET("/expenses", expenseHandler.ListExpenses)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	api.GET("/dashboard", dashboardHandler.GetDashboard)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	dashboardHandler.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully")
}

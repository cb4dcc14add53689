package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deposit-accounts/internal/config"
	"deposit-accounts/internal/database"
	"deposit-accounts/internal/events"
	"deposit-accounts/internal/handlers"
	custommiddleware "deposit-accounts/internal/middleware"
	"deposit-accounts/internal/repositories"
	"deposit-accounts/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	metrics := services.NewPrometheusMetrics()

	// Event publishing is best-effort: a dead Redis degrades to logged
	// publish failures, it never blocks account operations
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, account events will not be published", "error", err)
	}
	cancelPing()

	publisher := events.NewStreamPublisher(redisClient, cfg.Redis.Stream)
	notifier := events.NewNotifier(publisher, logger, metrics)

	accountRepo := repositories.NewAccountRepository(db)

	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	customerService := services.NewCustomerClient(&cfg.CustomerService, breaker, logger, metrics)
	ruleValidator := services.NewAccountRuleValidator()

	accountService := services.NewAccountService(accountRepo, customerService, ruleValidator, notifier, logger, metrics)
	commissionService := services.NewCommissionService(accountRepo, notifier, logger, metrics)

	accountHandler := handlers.NewAccountHandler(accountService, commissionService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	accountHandler.RegisterRoutes(api)

	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("deposit accounts service starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("redis close failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("database close failed", "error", err)
		}
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/hcstudio/cashtrack/internal/adapter/http"
	"github.com/hcstudio/cashtrack/internal/adapter/http/handler"
	"github.com/hcstudio/cashtrack/internal/adapter/http/middleware"
	postgresRepo "github.com/hcstudio/cashtrack/internal/adapter/repository/postgres"
	redisRepo "github.com/hcstudio/cashtrack/internal/adapter/repository/redis"
	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/infrastructure/config"
	"github.com/hcstudio/cashtrack/internal/infrastructure/logger"
	"github.com/hcstudio/cashtrack/internal/infrastructure/metrics"
	"github.com/hcstudio/cashtrack/internal/infrastructure/postgres"
	"github.com/hcstudio/cashtrack/internal/infrastructure/redis"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	tolerance, err := parseTolerance(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid reconciliation tolerance")
	}

	severity, err := parseSeverityThreshold(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid severity cutoff")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	scopeRepo := postgresRepo.NewScopeRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	entryRepo := postgresRepo.NewCashEntryRepository(pool)
	orderRepo := postgresRepo.NewDisbursementRepository(pool)
	saleRepo := postgresRepo.NewShopSaleRepository(pool)
	countRepo := postgresRepo.NewCashCountRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	// Initialize use cases
	movementUC := usecase.NewMovementUseCase(txManager, scopeRepo, movementRepo, idGen, retrier)
	entryUC := usecase.NewCashEntryUseCase(entryRepo, idGen)
	orderUC := usecase.NewDisbursementUseCase(orderRepo, idGen)
	saleUC := usecase.NewShopSaleUseCase(saleRepo, idGen)
	countUC, err := usecase.NewCashCountUseCase(countRepo, movementRepo, idGen, tolerance, severity)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build cash count use case")
	}
	summaryUC := usecase.NewSummaryUseCase(movementRepo, entryRepo, cache)

	// Initialize handlers
	m := metrics.New()
	movementHandler := handler.NewMovementHandler(movementUC, m)
	entryHandler := handler.NewCashEntryHandler(entryUC, m)
	orderHandler := handler.NewDisbursementHandler(orderUC, m)
	saleHandler := handler.NewShopSaleHandler(saleUC, m)
	countHandler := handler.NewCashCountHandler(countUC, m)
	summaryHandler := handler.NewSummaryHandler(summaryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MovementHandler:     movementHandler,
		CashEntryHandler:    entryHandler,
		DisbursementHandler: orderHandler,
		ShopSaleHandler:     saleHandler,
		CashCountHandler:    countHandler,
		SummaryHandler:      summaryHandler,
		HealthHandler:       healthHandler,
		IdempotencyStore:    idempotencyStore,
		RateLimiter:         middleware.NewRateLimiter(100, 200),
		Logging:             middleware.NewLoggingMiddleware(appLogger),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func parseTolerance(cfg *config.Config) (domain.Tolerance, error) {
	usd, err := decimal.NewFromString(cfg.ReconcileToleranceUSD)
	if err != nil {
		return domain.Tolerance{}, fmt.Errorf("usd tolerance %q: %w", cfg.ReconcileToleranceUSD, err)
	}

	ars, err := decimal.NewFromString(cfg.ReconcileToleranceARS)
	if err != nil {
		return domain.Tolerance{}, fmt.Errorf("ars tolerance %q: %w", cfg.ReconcileToleranceARS, err)
	}

	tol := domain.Tolerance{USD: usd, ARS: ars}
	return tol, tol.Validate()
}

func parseSeverityThreshold(cfg *config.Config) (domain.SeverityThreshold, error) {
	usd, err := decimal.NewFromString(cfg.ReconcileSeverityUSD)
	if err != nil {
		return domain.SeverityThreshold{}, fmt.Errorf("usd severity cutoff %q: %w", cfg.ReconcileSeverityUSD, err)
	}

	ars, err := decimal.NewFromString(cfg.ReconcileSeverityARS)
	if err != nil {
		return domain.SeverityThreshold{}, fmt.Errorf("ars severity cutoff %q: %w", cfg.ReconcileSeverityARS, err)
	}

	sev := domain.SeverityThreshold{USD: usd, ARS: ars}
	return sev, sev.Validate()
}

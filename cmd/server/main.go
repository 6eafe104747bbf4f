package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/creditgate/internal/adapter/http"
	"github.com/iho/creditgate/internal/adapter/http/handler"
	"github.com/iho/creditgate/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/creditgate/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/creditgate/internal/adapter/repository/redis"
	"github.com/iho/creditgate/internal/infrastructure/config"
	"github.com/iho/creditgate/internal/infrastructure/logger"
	"github.com/iho/creditgate/internal/infrastructure/metrics"
	"github.com/iho/creditgate/internal/infrastructure/postgres"
	"github.com/iho/creditgate/internal/infrastructure/redis"
	"github.com/iho/creditgate/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Apply schema migrations before opening the pool
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
		ConnectWait: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis. The quick-status cache is optional: the service
	// degrades to uncached reads when no Redis URL is configured.
	var statusCache usecase.StatusCache
	redisClient, err := redisConnect(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, quick-status cache disabled")
	} else if redisClient != nil {
		defer redisClient.Close()
		statusCache = redisRepo.NewStatusCache(redisClient)
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	checkRepo := postgresRepo.NewCheckRepository(pool)
	policyRepo := postgresRepo.NewPolicyRepository(pool)
	blockRepo := postgresRepo.NewBlockHistoryRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	var auditRepo usecase.AuditRepository
	if cfg.AuditEnabled {
		auditRepo = postgresRepo.NewAuditRepository(pool)
	}

	// Initialize use cases
	validationUC := usecase.NewValidationUseCase(
		customerRepo,
		ledgerRepo,
		invoiceRepo,
		checkRepo,
		policyRepo,
		blockRepo,
		auditRepo,
		idGen,
	)
	quickStatusUC := usecase.NewQuickStatusUseCase(customerRepo, invoiceRepo, statusCache, cfg.StatusCacheTTL)

	// Instrument use cases
	appMetrics := metrics.New()
	validationSvc := metrics.NewInstrumentedValidation(validationUC, appMetrics)
	quickStatusSvc := metrics.NewInstrumentedQuickStatus(quickStatusUC, appMetrics)

	// Initialize handlers
	validationHandler := handler.NewValidationHandler(validationSvc, quickStatusSvc)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Rate limiter with periodic eviction of idle client buckets
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	cleanupCtx, cancelCleanup := context.WithCancel(ctx)
	defer cancelCleanup()
	go rateLimiter.Cleanup(cleanupCtx, 10*time.Minute, time.Hour)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ValidationHandler: validationHandler,
		HealthHandler:     healthHandler,
		Logger:            appLogger,
		RateLimiter:       rateLimiter,
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func redisConnect(ctx context.Context, url string) (*goredis.Client, error) {
	if url == "" {
		return nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return redis.NewClient(connectCtx, url)
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	claimUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/claim"
	depositUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/deposit"
	userUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/user"
	withdrawUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/withdraw"

	cacheport "github.com/Akachukwuu/earnquiza/internal/domain/port/cache"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/handler"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/routes"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/cache"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/database"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/database/migration"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/flutterwave"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/logger"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/repository"
	timeProvider "github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/time"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction(), cfg.Logger.Level)
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig, err := cfg.ToDatabaseConfig()
	if err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if err := migrationMgr.SeedAdminUser(cfg.Rewards.AdminEmail, cfg.Rewards.DefaultClaimCooldown); err != nil {
		appLogger.Error("Failed to seed admin user", map[string]any{"error": err.Error()})
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Optional leaderboard cache
	var leaderboardCache cacheport.LeaderboardCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			appLogger.Warn("Redis unreachable, leaderboard cache disabled", map[string]any{
				"error": err.Error(),
			})
		} else {
			leaderboardCache = cache.NewRedisLeaderboard(redisClient)
			defer redisClient.Close()
		}
	}

	// Payment gateway
	verifier := flutterwave.NewClient(
		cfg.Flutterwave.SecretKey,
		appLogger,
		flutterwave.WithBaseURL(cfg.Flutterwave.BaseURL),
	)

	// Use cases
	userService := userUseCase.NewService(userRepo, leaderboardCache, tp, appLogger)
	claimService := claimUseCase.NewService(userRepo, tp, appLogger)
	withdrawService := withdrawUseCase.NewService(uow, tp, appLogger)
	depositService := depositUseCase.NewService(
		verifier,
		userRepo,
		transactionRepo,
		uow,
		tp,
		appLogger,
		cfg.Flutterwave.TestMode,
	)

	// API handlers
	depositHandler := handler.NewDepositHandler(depositService, appLogger)
	userHandler := handler.NewUserHandler(userService, claimService, appLogger)
	withdrawHandler := handler.NewWithdrawHandler(withdrawService, userService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, depositHandler, userHandler, withdrawHandler, cfg.Rewards.APIToken)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited", nil)
}

// Package setup wires configuration, logging, storage, and Redis into a
// single bundle the binaries share.
package setup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/redis"
	"github.com/burlang/burlang/internal/setup/config"
	"github.com/burlang/burlang/internal/watcher"
	"go.uber.org/zap"
)

// App bundles the common components used by every binary.
type App struct {
	Config       *config.Config
	Logger       *zap.Logger
	DBLogger     *zap.Logger
	DB           database.Client
	RedisManager *redis.Manager
	Watcher      *watcher.Manager
	LogManager   *LogManager
}

// LogManager tracks the loggers that need flushing on shutdown.
type LogManager struct {
	loggers []*zap.Logger
}

// Sync flushes all registered loggers.
func (m *LogManager) Sync() {
	for _, logger := range m.loggers {
		_ = logger.Sync()
	}
}

// InitializeApp loads the config, initializes logging, and connects to
// PostgreSQL and Redis. The caller owns the returned App and must call
// Cleanup when done.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, dbLogger, err := GetLoggers(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	logger.Info("Configuration loaded", zap.String("configDir", configDir))

	db, err := database.NewConnection(ctx, cfg, dbLogger, true)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisManager := redis.NewManager(&cfg.Redis, logger)

	watcherClient, err := redisManager.GetClient(redis.WatcherDBIndex)
	if err != nil {
		logger.Error("Failed to connect to Redis", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	watcherManager := watcher.NewManager(
		watcherClient,
		time.Duration(cfg.API.Consensus.WatcherTTLSeconds)*time.Second,
		logger,
	)

	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RedisManager: redisManager,
		Watcher:      watcherManager,
		LogManager:   &LogManager{loggers: []*zap.Logger{logger, dbLogger}},
	}, nil
}

// Cleanup releases connections and flushes the loggers.
func (app *App) Cleanup() {
	if err := app.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	app.RedisManager.Close()
	app.LogManager.Sync()
}

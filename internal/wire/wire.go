// Package wire provides dependency injection for the housekeeping board.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/housekeeping/internal/adapters/cli"
	redisstore "github.com/example/housekeeping/internal/adapters/redis"
	"github.com/example/housekeeping/internal/adapters/sqlite"
	"github.com/example/housekeeping/internal/app"
	"github.com/example/housekeeping/internal/config"
	"github.com/example/housekeeping/internal/db"
	"github.com/example/housekeeping/internal/interaction"
	"github.com/example/housekeeping/internal/logging"
	"github.com/example/housekeeping/internal/ports/primary"
	"github.com/example/housekeeping/internal/ports/secondary"
)

var (
	configPath  string
	cfg         *config.Config
	logger      *zap.Logger
	roomService primary.RoomService
	closeStore  func() error
	initErr     error
	once        sync.Once
)

// SetConfigPath overrides the config file location. It must be called
// before any other accessor.
func SetConfigPath(path string) {
	configPath = path
}

// ConfigPath resolves the config file: --config, then HOUSEKEEPING_CONFIG,
// then ~/.housekeeping/config.yaml.
func ConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	if p := os.Getenv(config.EnvPrefix + "_CONFIG"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// Config returns the loaded configuration.
func Config() (*config.Config, error) {
	once.Do(initServices)
	return cfg, initErr
}

// Logger returns the singleton logger. It is a no-op logger when
// initialization failed.
func Logger() *zap.Logger {
	once.Do(initServices)
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// RoomService returns the singleton RoomService instance, opened and
// seeded per configuration.
func RoomService() (primary.RoomService, error) {
	once.Do(initServices)
	return roomService, initErr
}

// RoomAdapter returns a new RoomAdapter writing to stdout.
func RoomAdapter() (*cliadapter.RoomAdapter, error) {
	return RoomAdapterWithOutput(os.Stdout)
}

// RoomAdapterWithOutput returns a new RoomAdapter writing to the given output.
func RoomAdapterWithOutput(out io.Writer) (*cliadapter.RoomAdapter, error) {
	svc, err := RoomService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewRoomAdapter(svc, out), nil
}

// Controller returns a new interaction controller over the singleton
// RoomService.
func Controller(prompter interaction.Prompter, renderer interaction.Renderer) (*interaction.Controller, error) {
	svc, err := RoomService()
	if err != nil {
		return nil, err
	}
	return interaction.NewController(svc, prompter, renderer, Logger()), nil
}

// Close releases the store and flushes the logger.
func Close() error {
	var err error
	if closeStore != nil {
		err = closeStore()
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	path, err := ConfigPath()
	if err != nil {
		initErr = err
		return
	}

	cfg, err = config.LoadConfig(path)
	if err != nil {
		initErr = err
		return
	}

	logger, err = logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Path)
	if err != nil {
		initErr = err
		return
	}

	ctx := context.Background()
	store, closer, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		initErr = err
		return
	}
	closeStore = closer

	svc := app.NewRoomService(store, logger.Named("rooms"))
	if err := svc.Open(ctx, cfg.Board.Seed); err != nil {
		initErr = err
		return
	}
	roomService = svc

	logger.Debug("services initialized",
		zap.String("config", path),
		zap.String("backend", cfg.Store.Backend),
	)
}

// OpenStore builds the snapshot store selected by cfg. The returned
// function releases its connection.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (secondary.SnapshotStore, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client := redisstore.NewClient(redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisstore.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return redisstore.NewSnapshotStore(client, cfg.Store.Key, logger), client.Close, nil

	case config.BackendSQLite:
		database, err := db.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return sqlite.NewSnapshotStore(database, cfg.Store.Key, logger), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

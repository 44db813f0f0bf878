package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/tasktracker/internal/server/config"
	"github.com/iudanet/tasktracker/internal/server/jwt"
	"github.com/iudanet/tasktracker/internal/server/password"
	"github.com/iudanet/tasktracker/internal/server/service"
	"github.com/iudanet/tasktracker/internal/server/storage"
	"github.com/iudanet/tasktracker/internal/server/storage/postgres"
	"github.com/iudanet/tasktracker/internal/server/storage/sqlite"
)

// App связывает конфигурацию, хранилище, сервисы и HTTP сервер
type App struct {
	config *config.Config
	logger *slog.Logger
	store  storage.Storage
	server *Server
}

// NewApp открывает хранилище, применяет миграции и собирает сервер
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*App, error) {
	store, err := OpenStorage(ctx, cfg.StorageDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	// Секрет передается явно, глобального состояния нет
	tokens := jwt.NewService([]byte(cfg.JWTSecret))
	hasher := password.NewHasher(password.DefaultCost)

	router := NewRouter(Deps{
		Logger:  logger,
		Auth:    service.NewAuthService(logger, store, hasher, tokens),
		Tasks:   service.NewTaskService(logger, store),
		Tokens:  tokens,
		Users:   store,
		Store:   store,
		Version: version,
	})

	return &App{
		config: cfg,
		logger: logger,
		store:  store,
		server: New(logger, cfg.Address, router),
	}, nil
}

// Run обслуживает запросы до отмены ctx и закрывает хранилище
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting task tracker server",
		slog.String("addr", a.config.Address),
		slog.String("storage", a.config.StorageDriver))

	runErr := a.server.Run(ctx)

	// Закрываем хранилище после остановки сервера
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close storage", slog.Any("error", err))
	}

	return runErr
}

// OpenStorage открывает хранилище выбранного драйвера
func OpenStorage(ctx context.Context, driver, dsn string) (storage.Storage, error) {
	switch driver {
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("sqlite init error: %w", err)
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("postgres init error: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// NewLogger создает slog.Logger по настройкам конфигурации
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

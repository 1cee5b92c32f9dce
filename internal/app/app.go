package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/session-authority/internal/config"
	"github.com/magabrotheeeer/session-authority/internal/lib/jwt"
	"github.com/magabrotheeeer/session-authority/internal/migrations"
	services "github.com/magabrotheeeer/session-authority/internal/services/auth"
	"github.com/magabrotheeeer/session-authority/internal/session"
	"github.com/magabrotheeeer/session-authority/internal/storage"
)

// App объединяет HTTP-сервер, хранилище и фоновую уборку сессий.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *storage.Storage
	memStore *session.Memory // nil, если хранилище сессий не в памяти
	cleanup  time.Duration
}

// New собирает приложение из конфигурации: подключает базу, применяет
// миграции, строит менеджер сессий по выбранной стратегии и настраивает роутер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	sessionManager, memStore, err := buildSessionManager(ctx, cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, sessionManager, cfg.Session.BcryptCost)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		memStore: memStore,
		cleanup:  cfg.Session.CleanupInterval,
	}, nil
}

// buildSessionManager выбирает стратегию выдачи токенов по конфигурации.
// Для opaque-стратегии с памятью возвращается также само хранилище,
// чтобы приложение могло запустить его уборку.
func buildSessionManager(ctx context.Context, cfg *config.Config) (session.Manager, *session.Memory, error) {
	ttl := cfg.Session.DefaultTokenTTL()

	switch cfg.Session.Strategy {
	case config.StrategyJWT:
		maker := jwt.NewJWTMaker(cfg.Session.JWTSecretKey, ttl)
		return session.NewSigned(maker), nil, nil

	case config.StrategyOpaque:
		switch cfg.Session.Store {
		case config.StoreRedis:
			store, err := session.NewRedisStore(ctx, cfg.RedisConnection)
			if err != nil {
				return nil, nil, err
			}
			return session.NewOpaque(store, ttl), nil, nil
		case config.StoreMemory:
			store := session.NewMemory()
			return session.NewOpaque(store, ttl), store, nil
		default:
			return nil, nil, fmt.Errorf("unknown session store: %s", cfg.Session.Store)
		}

	default:
		return nil, nil, fmt.Errorf("unknown session strategy: %s", cfg.Session.Strategy)
	}
}

// Run запускает HTTP-сервер и блокируется до отмены контекста или ошибки
// сервера. При остановке выполняется graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	if a.memStore != nil && a.cleanup > 0 {
		go a.memStore.Janitor(ctx, a.cleanup)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}

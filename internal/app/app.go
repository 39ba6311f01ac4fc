package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/desa-portal/config"
	"github.com/daniilsolovey/desa-portal/internal/auth"
	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/daniilsolovey/desa-portal/internal/desa"
	"github.com/daniilsolovey/desa-portal/internal/pagecache"
	"github.com/daniilsolovey/desa-portal/internal/rest"
	"github.com/daniilsolovey/desa-portal/internal/rpc"
	"github.com/go-pg/pg/v10"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type App struct {
	DB     *db.Repository
	Views  *desa.ViewCounter
	Cache  *pagecache.Cache
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)

	authService, err := auth.NewService(repo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	views := desa.NewViewCounter(repo, logger, cfg.Views.QueueSize)
	cache := pagecache.New(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	manager := desa.NewManager(repo, views, cache, logger)

	handler := rest.NewHandler(manager, authService, cache, repo, logger)
	handler.SecureCookie = cfg.Auth.SecureCookie

	e := handler.RegisterRoutes(rpc.New(logger, manager))
	if cfg.Sentry.DSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	return &App{
		DB:     repo,
		Views:  views,
		Cache:  cache,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "http server started", "addr", addr)

	return a.Echo.Start(addr)
}

// GracefulShutdown stops accepting requests, then drains pending view increments.
func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Views.Close()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/desa-portal/config"
	_ "github.com/daniilsolovey/desa-portal/docs"
	"github.com/daniilsolovey/desa-portal/internal/app"
	"github.com/daniilsolovey/desa-portal/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	lg       *slog.Logger
)

// @title Desa Portal API
// @version 1.0
// @description Village information site and admin CMS
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// a missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	if cfg.Sentry.DSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		})
		exitOnError(err)
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()

	if cfg.App.AutoMigrate {
		exitOnError(migrate(ctx, cfg))
	}

	dbConn := pg.Connect(&cfg.Database)
	if cfg.App.LogQueries {
		dbConn.AddQueryHook(db.NewQueryHook(lg, cfg.App.SlowQuery))
	}
	if err := dbConn.Ping(ctx); err != nil {
		dbConn.Close()
		exitOnError(err)
	}
	defer dbConn.Close()

	service, err := app.New(cfg, dbConn, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context, cfg *config.Config) error {
	sqldb, err := db.OpenSQL(&cfg.Database)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	return db.Migrate(ctx, sqldb, lg)
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}

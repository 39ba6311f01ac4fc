package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// OpenSQL opens a database/sql handle for the same database go-pg connects to.
// goose needs database/sql, go-pg does not provide it.
func OpenSQL(opts *pg.Options) (*sql.DB, error) {
	host, port, err := net.SplitHostPort(opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("parse database addr %q: %w", opts.Addr, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("parse database port %q: %w", port, err)
	}

	config := pgx.ConnConfig{
		Host:      host,
		Port:      uint16(p),
		Database:  opts.Database,
		User:      opts.User,
		Password:  opts.Password,
		TLSConfig: opts.TLSConfig,
	}

	return stdlib.OpenDB(config), nil
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, sqldb *sql.DB, logger *slog.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// MigrationStatus prints the state of every embedded migration.
func MigrationStatus(ctx context.Context, sqldb *sql.DB, logger *slog.Logger) error {
	if err := setupGoose(logger); err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose status: %w", err)
	}

	return nil
}

func setupGoose(logger *slog.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return nil
}

// gooseLogger routes goose output to slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

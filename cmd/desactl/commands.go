package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/desa-portal/internal/auth"
	"github.com/daniilsolovey/desa-portal/internal/db"
)

const envAdminPassword = "DESA_ADMIN_PASSWORD"

// withSQL runs a goose operation over a database/sql handle to the configured database.
func withSQL(ctx context.Context, fn func(context.Context, *sql.DB, *slog.Logger) error) error {
	sqldb, err := db.OpenSQL(&cfg.Database)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	return fn(ctx, sqldb, lg)
}

func runAdminCreate(cmd *cobra.Command, args []string) error {
	password := adminPassword
	if password == "" {
		password = os.Getenv(envAdminPassword)
	}
	if password == "" {
		return fmt.Errorf("password is required, pass --password or set %s", envAdminPassword)
	}

	conn := pg.Connect(&cfg.Database)
	defer conn.Close()

	ctx := cmd.Context()
	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	admin, err := createAdmin(ctx, db.New(conn), adminEmail, password)
	if err != nil {
		return err
	}

	lg.InfoContext(ctx, "admin created", "id", admin.ID, "email", admin.Email)
	fmt.Fprintln(cmd.OutOrStdout(), admin.ID)

	return nil
}

// createAdmin needs no signing key, so it runs on a throwaway secret.
func createAdmin(ctx context.Context, store auth.AdminStore, email, password string) (*db.Admin, error) {
	service, err := auth.NewService(store, "desactl", 0)
	if err != nil {
		return nil, err
	}

	admin, err := service.CreateAdmin(ctx, email, password)
	switch {
	case errors.Is(err, db.ErrEmailTaken):
		return nil, fmt.Errorf("admin %s already exists", email)
	case errors.Is(err, auth.ErrWeakPassword):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// Command desactl runs operator tasks against the portal database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/desa-portal/config"
	"github.com/daniilsolovey/desa-portal/internal/db"
)

var (
	configPath string
	debug      bool
	cfg        *config.Config
	lg         *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "desactl",
	Short:         "Operator commands for the desa portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		lg = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSQL(cmd.Context(), db.Migrate)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSQL(cmd.Context(), db.MigrationStatus)
	},
}

var (
	adminEmail    string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Example: `  desactl admin create --email admin@desa.id --password 'rahasia-desa'
  DESA_ADMIN_PASSWORD=rahasia-desa desactl admin create --email admin@desa.id`,
	RunE: runAdminCreate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to TOML configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (or set DESA_ADMIN_PASSWORD)")
	_ = adminCreateCmd.MarkFlagRequired("email")

	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(migrateCmd, adminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

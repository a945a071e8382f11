package main

import (
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/db"
	"github.com/ticklist/ticklist/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbtool",
		Short: "Database tools for ticklist",
	}

	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, cfg, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()
			return db.RunMigrations(database.DB, cfg.DBDriver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, cfg, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()
			return db.MigrateDown(database.DB, cfg.DBDriver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, cfg, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()
			return db.MigrationStatus(database.DB, cfg.DBDriver)
		},
	})

	return cmd
}

func connect() (database *sqlx.DB, cfg *config.Config, err error) {
	cfg = config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	d, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, nil, err
	}
	return d, cfg, nil
}

package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/templui/tasklist/internal/config"
	"github.com/templui/tasklist/internal/db"
	"github.com/templui/tasklist/internal/logger"
)

func UpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: withDB(func(cmd *cobra.Command, database *sqlx.DB, driver string) error {
			err := db.RunMigrations(database.DB, driver)
			if err != nil {
				return err
			}
			return printVersion(cmd, database, driver)
		}),
	}
}

func DownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: withDB(func(cmd *cobra.Command, database *sqlx.DB, driver string) error {
			err := db.MigrateDown(database.DB, driver)
			if err != nil {
				return err
			}
			return printVersion(cmd, database, driver)
		}),
	}
}

func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: withDB(func(cmd *cobra.Command, database *sqlx.DB, driver string) error {
			return db.MigrationStatus(database.DB, driver)
		}),
	}
}

// withDB resolves driver and DSN from flags or config, opens the database
// and closes it once fn returns.
func withDB(fn func(cmd *cobra.Command, database *sqlx.DB, driver string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		logger.Init(logger.Options{AppName: cfg.AppName, Env: cfg.AppEnv, Dev: cfg.IsDevelopment()})

		driver, _ := cmd.Flags().GetString("driver")
		if driver == "" {
			driver = cfg.DBDriver
		}
		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = cfg.DBConnection
		}

		database, err := db.Init(driver, dsn)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close(database)

		return fn(cmd, database, driver)
	}
}

func printVersion(cmd *cobra.Command, database *sqlx.DB, driver string) error {
	version, err := db.Version(database.DB, driver)
	if err != nil {
		return err
	}
	cmd.Printf("database at version %d\n", version)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/templui/tasklist/cmd/dbctl/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "dbctl",
		Short:        "Database migration tool for tasklist",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("driver", "", "database driver (sqlite, pgx); defaults to DB_DRIVER")
	rootCmd.PersistentFlags().String("dsn", "", "connection string; defaults to DB_CONNECTION")

	rootCmd.AddCommand(cmd.UpCmd())
	rootCmd.AddCommand(cmd.DownCmd())
	rootCmd.AddCommand(cmd.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

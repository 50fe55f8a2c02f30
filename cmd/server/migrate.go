package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/internal/config"
	"github.com/KirkDiggler/rpg-sheets/internal/database"
)

var migrateDBPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd, func(db *database.DB) error {
			if err := db.MigrateUp(); err != nil {
				return err
			}
			return printVersion(db)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration, dropping all data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd, func(db *database.DB) error {
			if err := db.MigrateDown(); err != nil {
				return err
			}
			fmt.Println("All migrations rolled back")
			return nil
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd, printVersion)
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrateDBPath, "db", "", "SQLite database path (overrides RPG_SHEETS_DATABASE_PATH)")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}

func withDatabase(cmd *cobra.Command, fn func(db *database.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.DatabasePath
	if cmd.Flags().Changed("db") {
		path = migrateDBPath
	}

	db, err := database.Open(context.Background(), path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return fn(db)
}

func printVersion(db *database.DB) error {
	st, err := db.MigrationVersion()
	if err != nil {
		return err
	}

	if st.Empty {
		fmt.Println("No migrations applied")
		return nil
	}
	if st.Dirty {
		fmt.Printf("Schema version: %d (dirty)\n", st.Version)
		return nil
	}
	fmt.Printf("Schema version: %d\n", st.Version)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			config.SetLevel(settings.LogLevel)

			db, err := database.Open(settings.Database, false)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %d models (%s)\n", len(database.AllModels()), settings.Database.Driver)
			return nil
		},
	}
}

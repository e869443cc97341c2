package main

import (
	"galeana-pepper/cmd/config"
	migration "galeana-pepper/cmd/database/migrate"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and seed the default tanks",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB(cmd.Context(), logger)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		return migration.Migrate(cmd.Context(), db, logger)
	},
}

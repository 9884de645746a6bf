package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "team-tracker.com/team-tracker/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		database, err := config.Open(cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		logrus.WithField("dsn", cfg.DatabaseDSN).Info("schema migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

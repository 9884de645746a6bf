package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	config "team-tracker.com/team-tracker/internal/configs"
	"team-tracker.com/team-tracker/internal/logging"
)

// loadConfig reads .env when present, then the environment, and sets up
// logging from the result.
func loadConfig() config.Config {
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	if envErr != nil {
		logrus.Debug(".env file not found, using environment variables")
	}
	return cfg
}

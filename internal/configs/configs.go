package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RateLimitKeyPrefix     string
	RedisAddr              string
	JWTSecret              string
	JWTTTLMinutes          int
	ProjectTaskLimit       int
	ShutdownTimeoutSeconds int
	LogLevel               string
	LogFormat              string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tracker.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitKeyPrefix:     getEnv("RATE_LIMIT_KEY_PREFIX", "team_tracker_rate"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		JWTTTLMinutes:          getEnvAsInt("JWT_TTL_MINUTES", 60),
		ProjectTaskLimit:       getEnvAsInt("PROJECT_TASK_LIMIT", 20),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "text"),
	}

	// redis is optional; without it the rate limiter counts in memory.
	if redisHost != "" {
		cfg.RedisAddr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		logrus.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		logrus.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		logrus.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ProjectTaskLimit <= 0 {
		logrus.Fatal("PROJECT_TASK_LIMIT must be greater than 0")
	}
	if cfg.JWTTTLMinutes <= 0 {
		logrus.Fatal("JWT_TTL_MINUTES must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		logrus.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			logrus.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

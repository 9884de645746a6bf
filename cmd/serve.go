package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "team-tracker.com/team-tracker/internal/configs"
	httpapi "team-tracker.com/team-tracker/internal/http"
	middleware "team-tracker.com/team-tracker/internal/http/middlewares"
	"team-tracker.com/team-tracker/internal/ratelimit"
	repository "team-tracker.com/team-tracker/internal/repositories"
	"team-tracker.com/team-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the team tracker HTTP API and the /metrics endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		database := config.New(cfg.DatabaseDSN)
		store := repository.NewStore(database)

		var counter ratelimit.Counter = ratelimit.NewMemoryCounter()
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			counter = ratelimit.NewRedisCounter(redisClient, cfg.RateLimitKeyPrefix)
			logrus.WithField("redis", cfg.RedisAddr).Info("rate limit counters shared through redis")
		}

		handler := httpapi.NewHandler(
			services.NewTaskService(store, cfg.ProjectTaskLimit),
			services.NewProjectService(store, cfg.ProjectTaskLimit),
			services.NewCommentService(store),
			services.NewUserService(store),
			services.NewReportService(store),
		)

		e := echo.New()
		e.HideBanner = true
		e.HTTPErrorHandler = httpapi.ErrorHandler
		e.Use(echomw.Recover())
		e.Use(echomw.RequestID())
		e.Use(middleware.RequestLogger())

		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
		httpapi.Register(e, handler, httpapi.RouteOptions{
			Counter:            counter,
			RateLimitPerMinute: cfg.RateLimit,
			JWTSecret:          []byte(cfg.JWTSecret),
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logrus.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.WithError(err).Error("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(echoCtx); err != nil {
			logrus.WithError(err).Warn("forced shutdown")
		}

		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}

		logrus.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "team-tracker.com/team-tracker/internal/errors"
	"team-tracker.com/team-tracker/internal/metrics"
)

// RequestLogger logs each request and records its latency histogram.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = apperrors.StatusCode(err)
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.RequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
				Observe(elapsed.Seconds())

			entry := logrus.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     status,
				"latency_ms": elapsed.Milliseconds(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})
			if status >= http.StatusInternalServerError {
				entry.Warn("request failed")
			} else {
				entry.Info("request handled")
			}

			return err
		}
	}
}

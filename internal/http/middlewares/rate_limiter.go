package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"team-tracker.com/team-tracker/internal/ratelimit"
)

// RateLimiter allows limit requests per client IP in each window. Counter
// failures let the request through.
func RateLimiter(counter ratelimit.Counter, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			count, err := counter.Increment(c.Request().Context(), key, window)
			if err != nil {
				logrus.WithError(err).WithField("client", key).Warn("rate limit counter unavailable")
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprint(limit))
			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Limite de requisições excedido.")
			}

			return next(c)
		}
	}
}

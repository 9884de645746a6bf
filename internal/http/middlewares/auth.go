package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"team-tracker.com/team-tracker/internal/auth"
	apperrors "team-tracker.com/team-tracker/internal/errors"
)

const actorKey = "actor_id"

// Authenticate resolves the acting user from an optional bearer token.
// Requests without a token pass through anonymous; a bad token is refused.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || len(secret) == 0 {
				return next(c)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return apperrors.ErrUnauthenticated
			}

			userID, err := auth.ParseToken(secret, strings.TrimSpace(token))
			if err != nil {
				logrus.WithError(err).Debug("rejected bearer token")
				return apperrors.ErrUnauthenticated
			}

			c.Set(actorKey, userID)
			return next(c)
		}
	}
}

// ActorID returns the authenticated user, or uuid.Nil for anonymous requests.
func ActorID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(actorKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

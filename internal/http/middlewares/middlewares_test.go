package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-tracker.com/team-tracker/internal/auth"
	apperrors "team-tracker.com/team-tracker/internal/errors"
	"team-tracker.com/team-tracker/internal/ratelimit"
)

type failingCounter struct{}

func (failingCounter) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("redis down")
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterRejectsAfterLimit(t *testing.T) {
	e := echo.New()
	e.Use(RateLimiter(ratelimit.NewMemoryCounter(), 2, time.Minute))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for i := 0; i < 2; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	e := echo.New()
	e.Use(RateLimiter(failingCounter{}, 1, time.Minute))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestAuthenticate(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	e := echo.New()
	e.Use(Authenticate(secret))
	e.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, ActorID(c).String())
	})

	t.Run("anonymous", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uuid.Nil.String(), rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := auth.IssueToken(secret, userID, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := serve(e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), rec.Body.String())
	})

	t.Run("bad token", func(t *testing.T) {
		token, err := auth.IssueToken([]byte("other"), userID, time.Hour)
		require.NoError(t, err)

		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/whoami", nil), httptest.NewRecorder())
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		err = Authenticate(secret)(func(c echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

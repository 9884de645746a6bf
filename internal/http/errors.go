package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	dto "team-tracker.com/team-tracker/internal/data_models"
	apperrors "team-tracker.com/team-tracker/internal/errors"
)

const internalErrorMessage = "Ocorreu um erro interno no servidor."

// ErrorHandler renders every handler error as an ErrorResponse. Domain
// exceptions keep their status; unknown errors are logged and hidden.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := http.StatusInternalServerError, internalErrorMessage

	var he *echo.HTTPError
	var appErr *apperrors.Exception
	switch {
	case errors.As(err, &he):
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = fmt.Sprint(he.Message)
		}
	case errors.As(err, &appErr):
		status, message = appErr.StatusCode, appErr.Message
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).Error("unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, dto.ErrorResponse{
			Message: message,
			TraceID: c.Response().Header().Get(echo.HeaderXRequestID),
		})
	}
	if err != nil {
		logrus.WithError(err).Warn("failed to write error response")
	}
}

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
	middleware "team-tracker.com/team-tracker/internal/http/middlewares"
)

// Performance is restricted to managers. The caller is the token subject,
// or the user_id query parameter for unauthenticated deployments.
func (h *Handler) Performance(c echo.Context) error {
	actor := middleware.ActorID(c)
	if actor == uuid.Nil {
		if raw := c.QueryParam("user_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Identificador inválido.")
			}
			actor = id
		}
	}

	rows, err := h.reportService.Performance(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewPerformanceReportViews(rows))
}

func (h *Handler) CompletedTasksSince(c echo.Context) error {
	since, err := parseDate(c.QueryParam("since"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Data inicial inválida.")
	}

	tasks, err := h.reportService.CompletedTasksSince(c.Request().Context(), since)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": dto.NewTaskViews(tasks),
	})
}

func (h *Handler) UsersWithCompletedTasks(c echo.Context) error {
	var ids []uuid.UUID
	for _, raw := range c.QueryParams()["user_id"] {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Identificador inválido.")
			}
			ids = append(ids, id)
		}
	}

	users, err := h.reportService.UsersWithCompletedTasks(c.Request().Context(), ids)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(users),
		"users": dto.NewUserViews(users),
	})
}

// parseDate accepts RFC 3339 timestamps or plain dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

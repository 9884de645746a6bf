package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
)

// ValidateUpdateTaskRequest checks only the fields that are present.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.DueDate != nil && !r.DueDate.IsZero() && !r.DueDate.After(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "A data de entrega deve ser futura.")
	}
	if r.Status != 0 && !r.Status.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Status da tarefa inválido.")
	}
	return nil
}

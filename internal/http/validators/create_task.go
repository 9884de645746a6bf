package validators

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "O título da tarefa é obrigatório.")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "A descrição da tarefa é obrigatória.")
	}
	if !r.DueDate.After(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "A data de entrega deve ser futura.")
	}
	if !r.Priority.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Prioridade da tarefa inválida.")
	}
	if r.ProjectID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "O projeto é obrigatório.")
	}
	return nil
}

package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
)

func ValidateProjectName(name string) error {
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "O nome do projeto é obrigatório.")
	}
	if utf8.RuneCountInString(name) > 200 {
		return echo.NewHTTPError(http.StatusBadRequest, "O nome do projeto deve ter no máximo 200 caracteres.")
	}
	return nil
}

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	if err := ValidateProjectName(r.Name); err != nil {
		return err
	}
	if r.UserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "O responsável pelo projeto é obrigatório.")
	}
	return nil
}

package validators

import (
	"net/http"
	"net/mail"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
)

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "O nome é obrigatório.")
	}
	if utf8.RuneCountInString(r.Name) > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "O nome deve ter no máximo 100 caracteres.")
	}
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "O e-mail é obrigatório.")
	}
	if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		return echo.NewHTTPError(http.StatusBadRequest, "O e-mail informado é inválido.")
	}
	if r.Role != 0 && !r.Role.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Função do usuário inválida.")
	}
	return nil
}

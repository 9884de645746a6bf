package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
)

const maxCommentLength = 500

func ValidateCommentContent(content string) error {
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "O conteúdo do comentário é obrigatório.")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return echo.NewHTTPError(http.StatusBadRequest, "O comentário deve ter no máximo 500 caracteres.")
	}
	return nil
}

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	if err := ValidateCommentContent(r.Content); err != nil {
		return err
	}
	if r.TaskID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "A tarefa é obrigatória.")
	}
	if r.UserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "O autor do comentário é obrigatório.")
	}
	return nil
}

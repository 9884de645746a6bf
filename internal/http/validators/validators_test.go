package validators

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-tracker.com/team-tracker/internal/constants"
	dto "team-tracker.com/team-tracker/internal/data_models"
)

func assertBadRequest(t *testing.T, err error, message string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, message, he.Message)
}

func validCreateTask() dto.CreateTaskRequest {
	return dto.CreateTaskRequest{
		Title:       "Write docs",
		Description: "API reference",
		DueDate:     time.Now().Add(48 * time.Hour),
		Priority:    constants.PriorityMedium,
		ProjectID:   uuid.New(),
	}
}

func TestValidateCreateTaskRequest(t *testing.T) {
	r := validCreateTask()
	assert.NoError(t, ValidateCreateTaskRequest(&r))

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateTaskRequest)
		message string
	}{
		{"missing title", func(r *dto.CreateTaskRequest) { r.Title = "" }, "O título da tarefa é obrigatório."},
		{"missing description", func(r *dto.CreateTaskRequest) { r.Description = "" }, "A descrição da tarefa é obrigatória."},
		{"past due date", func(r *dto.CreateTaskRequest) { r.DueDate = time.Now().Add(-time.Hour) }, "A data de entrega deve ser futura."},
		{"bad priority", func(r *dto.CreateTaskRequest) { r.Priority = 7 }, "Prioridade da tarefa inválida."},
		{"missing project", func(r *dto.CreateTaskRequest) { r.ProjectID = uuid.Nil }, "O projeto é obrigatório."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreateTask()
			tt.mutate(&r)
			assertBadRequest(t, ValidateCreateTaskRequest(&r), tt.message)
		})
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	assert.NoError(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}))

	past := time.Now().Add(-time.Hour)
	assertBadRequest(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{DueDate: &past}), "A data de entrega deve ser futura.")
	assertBadRequest(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Status: 9}), "Status da tarefa inválido.")
}

func TestValidateCreateCommentRequest(t *testing.T) {
	r := dto.CreateCommentRequest{Content: "hello", TaskID: uuid.New(), UserID: uuid.New()}
	assert.NoError(t, ValidateCreateCommentRequest(&r))

	r.Content = strings.Repeat("é", 501)
	assertBadRequest(t, ValidateCreateCommentRequest(&r), "O comentário deve ter no máximo 500 caracteres.")

	r.Content = strings.Repeat("é", 500)
	assert.NoError(t, ValidateCreateCommentRequest(&r))

	r.UserID = uuid.Nil
	assertBadRequest(t, ValidateCreateCommentRequest(&r), "O autor do comentário é obrigatório.")
}

func TestValidateCreateUserRequest(t *testing.T) {
	r := dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Role: constants.RoleManager}
	assert.NoError(t, ValidateCreateUserRequest(&r))

	r.Email = "not-an-email"
	assertBadRequest(t, ValidateCreateUserRequest(&r), "O e-mail informado é inválido.")

	r.Email = "ana@example.com"
	r.Role = 5
	assertBadRequest(t, ValidateCreateUserRequest(&r), "Função do usuário inválida.")
}

func TestValidateCreateProjectRequest(t *testing.T) {
	assertBadRequest(t, ValidateCreateProjectRequest(&dto.CreateProjectRequest{UserID: uuid.New()}), "O nome do projeto é obrigatório.")
	assert.NoError(t, ValidateCreateProjectRequest(&dto.CreateProjectRequest{Name: "Infra", UserID: uuid.New()}))
}

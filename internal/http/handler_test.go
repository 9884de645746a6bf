package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-tracker.com/team-tracker/internal/auth"
	config "team-tracker.com/team-tracker/internal/configs"
	dto "team-tracker.com/team-tracker/internal/data_models"
	model "team-tracker.com/team-tracker/internal/models"
	"team-tracker.com/team-tracker/internal/ratelimit"
	repository "team-tracker.com/team-tracker/internal/repositories"
	"team-tracker.com/team-tracker/internal/services"
)

var testSecret = []byte("handler-test-secret")

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := config.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := repository.NewStore(db)
	h := NewHandler(
		services.NewTaskService(store, model.MaxTasksPerProject),
		services.NewProjectService(store, model.MaxTasksPerProject),
		services.NewCommentService(store),
		services.NewUserService(store),
		services.NewReportService(store),
	)

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	Register(e, h, RouteOptions{
		Counter:            ratelimit.NewMemoryCounter(),
		RateLimitPerMinute: 1000,
		JWTSecret:          testSecret,
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var payload string
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = string(raw)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func createUser(t *testing.T, e *echo.Echo, name string, role int) dto.UserView {
	rec := do(t, e, http.MethodPost, "/api/users", echo.Map{
		"name":  name,
		"email": strings.ToLower(name) + "@example.com",
		"role":  role,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.UserView](t, rec)
}

func createProject(t *testing.T, e *echo.Echo, owner uuid.UUID) dto.ProjectView {
	rec := do(t, e, http.MethodPost, "/api/projects", echo.Map{"name": "Infra", "user_id": owner}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.ProjectView](t, rec)
}

func createTask(t *testing.T, e *echo.Echo, project, assignee uuid.UUID) dto.TaskDetailView {
	rec := do(t, e, http.MethodPost, "/api/tasks", echo.Map{
		"title":       "Write docs",
		"description": "API reference",
		"due_date":    time.Now().Add(48 * time.Hour),
		"priority":    2,
		"project_id":  project,
		"user_id":     assignee,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.TaskDetailView](t, rec)
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	e := setupServer(t)
	owner := createUser(t, e, "Ana", 1)
	project := createProject(t, e, owner.ID)

	task := createTask(t, e, project.ID, owner.ID)
	assert.Equal(t, "Pendente", task.StatusLabel)
	assert.Equal(t, "Infra", task.ProjectName)
	assert.Equal(t, "Ana", task.AssignedUserName)
	require.Len(t, task.History, 1)

	rec := do(t, e, http.MethodPut, "/api/tasks/"+task.ID.String(), echo.Map{"status": 3, "user_id": owner.ID}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dto.TaskDetailView](t, rec)
	assert.Equal(t, "Concluída", updated.StatusLabel)
	assert.NotNil(t, updated.CompletedAt)

	rec = do(t, e, http.MethodGet, "/api/tasks/"+task.ID.String()+"/history", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.TaskHistoryView](t, rec), 3)

	rec = do(t, e, http.MethodDelete, "/api/projects/"+project.ID.String(), nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/tasks/"+task.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTask_ValidationError(t *testing.T) {
	e := setupServer(t)

	rec := do(t, e, http.MethodPost, "/api/tasks", echo.Map{
		"title":       "Late",
		"description": "Already due",
		"due_date":    time.Now().Add(-time.Hour),
		"priority":    1,
		"project_id":  uuid.New(),
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A data de entrega deve ser futura.", decode[dto.ErrorResponse](t, rec).Message)
}

func TestDeleteProject_WithPendingTask(t *testing.T) {
	e := setupServer(t)
	owner := createUser(t, e, "Ana", 1)
	project := createProject(t, e, owner.ID)
	createTask(t, e, project.ID, owner.ID)

	rec := do(t, e, http.MethodDelete, "/api/projects/"+project.ID.String(), nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Não é possível excluir um projeto com tarefas pendentes.", decode[dto.ErrorResponse](t, rec).Message)

	rec = do(t, e, http.MethodGet, "/api/projects/"+project.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[dto.ProjectView](t, rec).TasksCount)
}

func TestNotFoundAndBadID(t *testing.T) {
	e := setupServer(t)

	rec := do(t, e, http.MethodGet, "/api/tasks/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/tasks/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Identificador inválido.", decode[dto.ErrorResponse](t, rec).Message)
}

func TestCommentOverHTTP(t *testing.T) {
	e := setupServer(t)
	owner := createUser(t, e, "Ana", 1)
	project := createProject(t, e, owner.ID)
	task := createTask(t, e, project.ID, owner.ID)

	token, err := auth.IssueToken(testSecret, owner.ID, time.Hour)
	require.NoError(t, err)

	rec := do(t, e, http.MethodPost, "/api/comments", echo.Map{"task_id": task.ID, "content": "hello"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	comment := decode[dto.CommentView](t, rec)
	assert.Equal(t, "Ana", comment.UserName)

	rec = do(t, e, http.MethodGet, "/api/tasks/"+task.ID.String()+"/comments", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.CommentView](t, rec), 1)
}

func TestUpdateTask_TokenSubjectOverridesBodyActor(t *testing.T) {
	e := setupServer(t)
	ana := createUser(t, e, "Ana", 1)
	bruno := createUser(t, e, "Bruno", 1)
	project := createProject(t, e, ana.ID)
	task := createTask(t, e, project.ID, ana.ID)

	token, err := auth.IssueToken(testSecret, ana.ID, time.Hour)
	require.NoError(t, err)

	rec := do(t, e, http.MethodPut, "/api/tasks/"+task.ID.String(), echo.Map{"status": 2, "user_id": bruno.ID}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	history := decode[dto.TaskDetailView](t, rec).History
	last := history[len(history)-1]
	assert.Equal(t, ana.ID, last.UserID)

	rec = do(t, e, http.MethodPut, "/api/tasks/"+task.ID.String(), echo.Map{"status": 1, "user_id": bruno.ID}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	history = decode[dto.TaskDetailView](t, rec).History
	assert.Equal(t, bruno.ID, history[len(history)-1].UserID)
}

func TestPerformanceReportAccess(t *testing.T) {
	e := setupServer(t)
	worker := createUser(t, e, "Joao", 1)
	manager := createUser(t, e, "Maria", 2)

	rec := do(t, e, http.MethodGet, "/api/reports/performance", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	workerToken, err := auth.IssueToken(testSecret, worker.ID, time.Hour)
	require.NoError(t, err)
	rec = do(t, e, http.MethodGet, "/api/reports/performance", nil, workerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	managerToken, err := auth.IssueToken(testSecret, manager.ID, time.Hour)
	require.NoError(t, err)
	rec = do(t, e, http.MethodGet, "/api/reports/performance", nil, managerToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/reports/performance", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.GET("/boom", func(c echo.Context) error { return fmt.Errorf("disk on fire") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, decode[dto.ErrorResponse](t, rec).Message)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"team-tracker.com/team-tracker/internal/services"
)

type Handler struct {
	taskService    *services.TaskService
	projectService *services.ProjectService
	commentService *services.CommentService
	userService    *services.UserService
	reportService  *services.ReportService
}

func NewHandler(
	taskService *services.TaskService,
	projectService *services.ProjectService,
	commentService *services.CommentService,
	userService *services.UserService,
	reportService *services.ReportService,
) *Handler {
	return &Handler{
		taskService:    taskService,
		projectService: projectService,
		commentService: commentService,
		userService:    userService,
		reportService:  reportService,
	}
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Identificador inválido.")
	}
	return id, nil
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "JSON inválido.")
	}
	return nil
}

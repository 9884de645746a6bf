package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
	middleware "team-tracker.com/team-tracker/internal/http/middlewares"
	"team-tracker.com/team-tracker/internal/http/validators"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	in := req.ToInput()
	if actor := middleware.ActorID(c); actor != uuid.Nil {
		in.ActorID = &actor
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewTaskDetailView(task))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskDetailView(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": dto.NewTaskViews(tasks),
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}
	// An authenticated caller always acts as itself; the body names the
	// actor only on anonymous requests.
	if actor := middleware.ActorID(c); actor != uuid.Nil {
		req.UserID = actor
	}
	if req.UserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "O usuário responsável pela alteração é obrigatório.")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskDetailView(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id, middleware.ActorID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListTaskHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	entries, err := h.taskService.ListHistory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskHistoryViews(entries))
}

func (h *Handler) ListTaskAuditLog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	entries, err := h.taskService.ListAuditLog(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskAuditLogViews(entries))
}

func (h *Handler) ListProjectTasks(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListByProject(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": dto.NewTaskViews(tasks),
	})
}

func (h *Handler) ListUserTasks(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListByUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": dto.NewTaskViews(tasks),
	})
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
	middleware "team-tracker.com/team-tracker/internal/http/middlewares"
	"team-tracker.com/team-tracker/internal/http/validators"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.UserID == uuid.Nil {
		req.UserID = middleware.ActorID(c)
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req.Name, req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewProjectView(project))
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.GetProject(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProjectView(project))
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(projects),
		"projects": dto.NewProjectViews(projects),
	})
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateProjectName(req.Name); err != nil {
		return err
	}

	project, err := h.projectService.RenameProject(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProjectView(project))
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

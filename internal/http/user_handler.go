package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
	"team-tracker.com/team-tracker/internal/http/validators"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewUserView(user))
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewUserView(user))
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(users),
		"users": dto.NewUserViews(users),
	})
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewUserView(user))
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	dto "team-tracker.com/team-tracker/internal/data_models"
	middleware "team-tracker.com/team-tracker/internal/http/middlewares"
	"team-tracker.com/team-tracker/internal/http/validators"
)

func (h *Handler) CreateComment(c echo.Context) error {
	var req dto.CreateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if actor := middleware.ActorID(c); actor != uuid.Nil {
		req.UserID = actor
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return err
	}

	comment, err := h.commentService.AddComment(c.Request().Context(), req.TaskID, req.UserID, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewCommentView(comment))
}

func (h *Handler) GetComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	comment, err := h.commentService.GetComment(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCommentView(comment))
}

func (h *Handler) ListTaskComments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCommentViews(comments))
}

func (h *Handler) UpdateComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCommentContent(req.Content); err != nil {
		return err
	}

	comment, err := h.commentService.UpdateComment(c.Request().Context(), id, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCommentView(comment))
}

func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

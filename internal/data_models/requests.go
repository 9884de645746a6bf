package dto

import (
	"time"

	"github.com/google/uuid"

	"team-tracker.com/team-tracker/internal/constants"
)

type CreateTaskRequest struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	DueDate     time.Time              `json:"due_date"`
	Priority    constants.TaskPriority `json:"priority"`
	ProjectID   uuid.UUID              `json:"project_id"`
	UserID      *uuid.UUID             `json:"user_id,omitempty"`
}

// UpdateTaskRequest fields are optional; zero values mean "no change".
type UpdateTaskRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Status      constants.TaskStatus `json:"status"`
	UserID      uuid.UUID            `json:"user_id"`
}

type CreateCommentRequest struct {
	Content string    `json:"content"`
	TaskID  uuid.UUID `json:"task_id"`
	UserID  uuid.UUID `json:"user_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type CreateUserRequest struct {
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  constants.UserRole `json:"role"`
}

type CreateProjectRequest struct {
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"user_id"`
}

type UpdateProjectRequest struct {
	Name string `json:"name"`
}

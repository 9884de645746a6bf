package dto

import (
	"time"

	"github.com/google/uuid"

	"team-tracker.com/team-tracker/internal/constants"
)

type TaskView struct {
	ID               uuid.UUID              `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	DueDate          time.Time              `json:"due_date"`
	Priority         constants.TaskPriority `json:"priority"`
	PriorityLabel    string                 `json:"priority_label"`
	Status           constants.TaskStatus   `json:"status"`
	StatusLabel      string                 `json:"status_label"`
	ProjectID        uuid.UUID              `json:"project_id"`
	ProjectName      string                 `json:"project_name"`
	UserID           *uuid.UUID             `json:"user_id,omitempty"`
	AssignedUserName string                 `json:"assigned_user_name,omitempty"`
	CompletedAt      *time.Time             `json:"completed_at,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

type TaskDetailView struct {
	TaskView
	Comments []CommentView     `json:"comments"`
	History  []TaskHistoryView `json:"history"`
}

type TaskHistoryView struct {
	ID          uuid.UUID             `json:"id"`
	Description string                `json:"description"`
	Status      *constants.TaskStatus `json:"status,omitempty"`
	StatusLabel string                `json:"status_label,omitempty"`
	ChangedAt   time.Time             `json:"changed_at"`
	UserID      uuid.UUID             `json:"user_id"`
	UserName    string                `json:"user_name"`
}

type TaskAuditLogView struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	UserID      uuid.UUID `json:"user_id"`
	Description string    `json:"description"`
	StatusLabel string    `json:"status_label"`
	ChangedAt   time.Time `json:"changed_at"`
}

type CommentView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
}

type ProjectView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	UserID     uuid.UUID `json:"user_id"`
	OwnerName  string    `json:"owner_name"`
	TasksCount int64     `json:"tasks_count"`
}

type UserView struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      constants.UserRole `json:"role"`
	RoleLabel string             `json:"role_label"`
}

type PerformanceReportView struct {
	UserID                          uuid.UUID `json:"user_id"`
	UserName                        string    `json:"user_name"`
	CompletedTasks                  int64     `json:"completed_tasks"`
	AverageCompletedTasksLast30Days float64   `json:"average_completed_tasks_last_30_days"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-tracker.com/team-tracker/internal/constants"
)

// TaskAuditLog outlives the task it describes: it carries no foreign keys,
// so deleting a task or project leaves its rows in place.
type TaskAuditLog struct {
	ID          uuid.UUID            `gorm:"type:char(36);primaryKey" json:"id"`
	TaskID      uuid.UUID            `gorm:"type:char(36);not null;index" json:"task_id"`
	ProjectID   uuid.UUID            `gorm:"type:char(36);not null;index" json:"project_id"`
	UserID      uuid.UUID            `gorm:"type:char(36);not null" json:"user_id"`
	Description string               `gorm:"size:500;not null" json:"description"`
	Status      constants.TaskStatus `gorm:"not null" json:"status"`
	ChangedAt   time.Time            `gorm:"not null" json:"changed_at"`
}

func (TaskAuditLog) TableName() string { return "task_audit_logs" }

func (l *TaskAuditLog) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// All lists every model the store migrates, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Project{},
		&Task{},
		&Comment{},
		&TaskHistory{},
		&TaskAuditLog{},
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-tracker.com/team-tracker/internal/constants"
)

// TaskHistory is append-only. Rows disappear only when their task is deleted.
type TaskHistory struct {
	ID          uuid.UUID             `gorm:"type:char(36);primaryKey" json:"id"`
	Description string                `gorm:"size:500;not null" json:"description"`
	Status      *constants.TaskStatus `json:"status,omitempty"`
	ChangedAt   time.Time             `gorm:"not null;index" json:"changed_at"`
	// Sequence keeps the staging order of entries that share ChangedAt.
	Sequence int       `gorm:"not null;default:0" json:"-"`
	TaskID   uuid.UUID `gorm:"type:char(36);not null;index" json:"task_id"`
	Task     *Task     `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	UserID   uuid.UUID `gorm:"type:char(36);not null;index" json:"user_id"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (TaskHistory) TableName() string { return "task_histories" }

func (h *TaskHistory) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-tracker.com/team-tracker/internal/constants"
)

type Task struct {
	ID          uuid.UUID              `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string                 `gorm:"size:200;not null" json:"title"`
	Description string                 `gorm:"size:1000" json:"description"`
	DueDate     time.Time              `gorm:"not null" json:"due_date"`
	Priority    constants.TaskPriority `gorm:"<-:create;not null" json:"priority"`
	Status      constants.TaskStatus   `gorm:"not null;default:1;index" json:"status"`
	UserID      *uuid.UUID             `gorm:"type:char(36);index" json:"user_id,omitempty"`
	Assignee    *User                  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	ProjectID   uuid.UUID              `gorm:"type:char(36);not null;index" json:"project_id"`
	Project     *Project               `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`

	Comments []Comment     `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	History  []TaskHistory `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Task) IsCompleted() bool {
	return t.Status == constants.StatusCompleted
}

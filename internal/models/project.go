package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxTasksPerProject is the default project capacity.
const MaxTasksPerProject = 20

type Project struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index" json:"user_id"`
	Owner     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Tasks     []Task    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// TasksCount is only populated by queries that select it.
	TasksCount int64 `gorm:"->;-:migration" json:"tasks_count"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-tracker.com/team-tracker/internal/constants"
)

type User struct {
	ID        uuid.UUID          `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string             `gorm:"size:100;not null" json:"name"`
	Email     string             `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Role      constants.UserRole `gorm:"not null;default:1" json:"role"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsManager() bool {
	return u != nil && u.Role == constants.RoleManager
}

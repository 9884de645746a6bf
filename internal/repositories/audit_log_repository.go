package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "team-tracker.com/team-tracker/internal/models"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *model.TaskAuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditLogRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.TaskAuditLog, error) {
	var entries []model.TaskAuditLog
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("changed_at asc").
		Find(&entries).Error
	return entries, err
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "team-tracker.com/team-tracker/internal/models"
)

// HistoryRepository has no update or delete: history is append-only.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) CreateBatch(ctx context.Context, entries []*model.TaskHistory) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(entries).Error
}

func (r *HistoryRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.TaskHistory, error) {
	var entries []model.TaskHistory
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("task_id = ?", taskID).
		Order("changed_at asc, sequence asc").
		Find(&entries).Error
	return entries, err
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-tracker.com/team-tracker/internal/constants"
	model "team-tracker.com/team-tracker/internal/models"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type CompletedCount struct {
	UserID    uuid.UUID
	Completed int64
}

// CompletedTasksSince returns completed tasks due on or after since,
// latest due date first.
func (r *ReportRepository) CompletedTasksSince(ctx context.Context, since time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("status = ? AND due_date >= ?", constants.StatusCompleted, since).
		Order("due_date desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *ReportRepository) CompletedCountsByUser(ctx context.Context, since time.Time) ([]CompletedCount, error) {
	var rows []CompletedCount
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("user_id, COUNT(*) AS completed").
		Where("status = ? AND due_date >= ? AND user_id IS NOT NULL", constants.StatusCompleted, since).
		Group("user_id").
		Scan(&rows).Error
	return rows, err
}

// UsersWithCompletedTasks filters ids down to users assigned at least one
// completed task.
func (r *ReportRepository) UsersWithCompletedTasks(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	completed := r.db.Model(&model.Task{}).
		Select("user_id").
		Where("status = ? AND user_id IS NOT NULL", constants.StatusCompleted)

	var users []model.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("id IN (?)", completed).
		Order("name asc").
		Find(&users).Error
	return users, err
}

func (r *ReportRepository) UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name asc").Find(&users).Error
	return users, err
}

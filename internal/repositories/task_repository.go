package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-tracker.com/team-tracker/internal/constants"
	model "team-tracker.com/team-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const insertWithinCapacity = `INSERT INTO tasks
	(id, title, description, due_date, priority, status, user_id, project_id, completed_at, created_at, updated_at)
SELECT ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?
WHERE (SELECT COUNT(*) FROM tasks WHERE project_id = ?) < ?`

// InsertWithinCapacity inserts the task only while its project holds fewer
// than limit tasks. The count and the insert are one statement, so two
// concurrent creators cannot both take the last slot.
func (r *TaskRepository) InsertWithinCapacity(ctx context.Context, task *model.Task, limit int) (bool, error) {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	var assignee interface{}
	if task.UserID != nil {
		assignee = task.UserID.String()
	}

	res := r.db.WithContext(ctx).Exec(insertWithinCapacity,
		task.ID.String(),
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		assignee,
		task.ProjectID.String(),
		task.CreatedAt,
		task.UpdatedAt,
		task.ProjectID.String(),
		limit,
	)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// FindByIDWithDetails loads the project, assignee, comments and history.
func (r *TaskRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Preload("Comments.User").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at asc, sequence asc")
		}).
		Preload("History.User").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepository) withSummary(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Project").Preload("Assignee")
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.withSummary(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.withSummary(ctx).
		Where("project_id = ?", projectID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.withSummary(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// HasIncompleteInProject looks for a single non-Completed task without
// loading the project's task list.
func (r *TaskRepository) HasIncompleteInProject(ctx context.Context, projectID uuid.UUID) (bool, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ? AND status <> ?", projectID, constants.StatusCompleted).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Update writes the mutable columns only; priority is never touched.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	task.UpdatedAt = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"due_date":     task.DueDate,
			"status":       task.Status,
			"completed_at": task.CompletedAt,
			"updated_at":   task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

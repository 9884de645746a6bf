package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "team-tracker.com/team-tracker/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectWithTaskCount = "projects.*, (SELECT COUNT(*) FROM tasks WHERE tasks.project_id = projects.id) AS tasks_count"

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// FindByIDWithOwner also fills TasksCount.
func (r *ProjectRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Select(projectWithTaskCount).
		Preload("Owner").
		First(&project, "projects.id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Select(projectWithTaskCount).
		Preload("Owner").
		Order("projects.created_at desc").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "team-tracker.com/team-tracker/internal/errors"
	"team-tracker.com/team-tracker/internal/metrics"
	model "team-tracker.com/team-tracker/internal/models"
	repository "team-tracker.com/team-tracker/internal/repositories"
)

type ProjectService struct {
	store *repository.Store
	limit int
}

func NewProjectService(store *repository.Store, projectTaskLimit int) *ProjectService {
	if projectTaskLimit <= 0 {
		projectTaskLimit = model.MaxTasksPerProject
	}
	return &ProjectService{store: store, limit: projectTaskLimit}
}

func (s *ProjectService) CreateProject(ctx context.Context, name string, ownerID uuid.UUID) (*model.Project, error) {
	if _, err := s.store.Users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.UserNotFound(ownerID)
		}
		return nil, err
	}

	project := &model.Project{Name: name, UserID: ownerID}
	if err := s.store.Projects.Create(ctx, project); err != nil {
		return nil, err
	}

	logrus.WithField("project_id", project.ID).Info("project created")
	return s.store.Projects.FindByIDWithOwner(ctx, project.ID)
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.store.Projects.FindByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ProjectNotFound(id)
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.store.Projects.List(ctx)
}

func (s *ProjectService) RenameProject(ctx context.Context, id uuid.UUID, name string) (*model.Project, error) {
	if err := s.store.Projects.Rename(ctx, id, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ProjectNotFound(id)
		}
		return nil, err
	}
	return s.store.Projects.FindByIDWithOwner(ctx, id)
}

// DeleteProject succeeds only when every task of the project is Completed.
// The check and the delete share one transaction.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Projects.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.ProjectNotFound(id)
			}
			return err
		}

		ok, err := NewProjectGuard(tx.Tasks, s.limit).CanDelete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrProjectHasPendingTasks
		}

		return tx.Projects.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectHasPendingTasks) {
			metrics.InvariantRejections.WithLabelValues("completion").Inc()
		}
		return err
	}

	logrus.WithField("project_id", id).Info("project deleted")
	return nil
}

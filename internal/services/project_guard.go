package services

import (
	"context"

	"github.com/google/uuid"
)

type projectTasks interface {
	CountByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
	HasIncompleteInProject(ctx context.Context, projectID uuid.UUID) (bool, error)
}

// ProjectGuard holds the capacity and completion invariants of a project.
type ProjectGuard struct {
	tasks projectTasks
	limit int
}

func NewProjectGuard(tasks projectTasks, limit int) *ProjectGuard {
	return &ProjectGuard{tasks: tasks, limit: limit}
}

func (g *ProjectGuard) Limit() int {
	return g.limit
}

func (g *ProjectGuard) CanAcceptTask(ctx context.Context, projectID uuid.UUID) (bool, error) {
	count, err := g.tasks.CountByProject(ctx, projectID)
	if err != nil {
		return false, err
	}
	return count < int64(g.limit), nil
}

// CanDelete is false while any task of the project is not Completed.
// Cancelled tasks block deletion too.
func (g *ProjectGuard) CanDelete(ctx context.Context, projectID uuid.UUID) (bool, error) {
	blocked, err := g.tasks.HasIncompleteInProject(ctx, projectID)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

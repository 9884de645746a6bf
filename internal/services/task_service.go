package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"team-tracker.com/team-tracker/internal/audit"
	"team-tracker.com/team-tracker/internal/constants"
	apperrors "team-tracker.com/team-tracker/internal/errors"
	"team-tracker.com/team-tracker/internal/metrics"
	model "team-tracker.com/team-tracker/internal/models"
	repository "team-tracker.com/team-tracker/internal/repositories"
)

type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    constants.TaskPriority
	AssigneeID  *uuid.UUID
	// ActorID is the creating user; used for the history entry when the
	// task has no assignee.
	ActorID *uuid.UUID
}

// UpdateTaskInput is a partial patch: empty strings, a nil or zero due date
// and a zero status leave the field unchanged.
type UpdateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      constants.TaskStatus
	ActorID     uuid.UUID
}

type TaskService struct {
	store      *repository.Store
	guardLimit int
	now        func() time.Time
	// newGuard builds the pre-insert check over the transaction's tasks.
	newGuard   func(tasks projectTasks, limit int) *ProjectGuard
}

func NewTaskService(store *repository.Store, projectTaskLimit int) *TaskService {
	if projectTaskLimit <= 0 {
		projectTaskLimit = model.MaxTasksPerProject
	}
	return &TaskService{
		store:      store,
		guardLimit: projectTaskLimit,
		now:        func() time.Time { return time.Now().UTC() },
		newGuard:   NewProjectGuard,
	}
}

func (s *TaskService) guard(tx *repository.Store) *ProjectGuard {
	return s.newGuard(tx.Tasks, s.guardLimit)
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if !in.Priority.IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	task := &model.Task{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate.UTC(),
		Priority:    in.Priority,
		Status:      constants.StatusPending,
		UserID:      in.AssigneeID,
		ProjectID:   in.ProjectID,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := tx.Projects.FindByID(ctx, in.ProjectID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.ProjectNotFound(in.ProjectID)
			}
			return err
		}

		actorID, err := s.creationActor(ctx, tx, in, project)
		if err != nil {
			return err
		}

		guard := s.guard(tx)
		ok, err := guard.CanAcceptTask(ctx, project.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ProjectTaskLimit(guard.Limit())
		}

		inserted, err := tx.Tasks.InsertWithinCapacity(ctx, task, guard.Limit())
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		if !inserted {
			return apperrors.ProjectTaskLimit(guard.Limit())
		}

		recorder := audit.NewRecorder()
		recorder.Record(task.ID, actorID, audit.TaskCreated, task.Status, task.CreatedAt)

		return tx.Histories.CreateBatch(ctx, recorder.Entries())
	})
	if err != nil {
		if apperrors.IsInvalidOperation(err) {
			metrics.InvariantRejections.WithLabelValues("capacity").Inc()
		}
		return nil, err
	}

	metrics.TasksCreated.Inc()
	metrics.HistoryEntries.Inc()
	logrus.WithFields(logrus.Fields{
		"task_id":    task.ID,
		"project_id": task.ProjectID,
	}).Info("task created")

	return s.store.Tasks.FindByIDWithDetails(ctx, task.ID)
}

// creationActor picks the history actor: assignee, then acting user, then
// the project owner.
func (s *TaskService) creationActor(
	ctx context.Context,
	tx *repository.Store,
	in CreateTaskInput,
	project *model.Project,
) (uuid.UUID, error) {
	if in.AssigneeID != nil {
		if _, err := tx.Users.FindByID(ctx, *in.AssigneeID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return uuid.Nil, apperrors.UserNotFound(*in.AssigneeID)
			}
			return uuid.Nil, err
		}
		return *in.AssigneeID, nil
	}

	if in.ActorID != nil {
		if _, err := tx.Users.FindByID(ctx, *in.ActorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return uuid.Nil, apperrors.UserNotFound(*in.ActorID)
			}
			return uuid.Nil, err
		}
		return *in.ActorID, nil
	}

	return project.UserID, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, in UpdateTaskInput) (*model.Task, error) {
	if in.Status != 0 && !in.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	var written int
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		task, err := tx.Tasks.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.TaskNotFound(id)
			}
			return err
		}

		if _, err := tx.Users.FindByID(ctx, in.ActorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.UserNotFound(in.ActorID)
			}
			return err
		}

		now := s.now()
		oldStatus := task.Status

		descriptions := audit.Describe(applyPatch(task, in))
		if side := syncCompletion(task, oldStatus, now); side != "" {
			descriptions = append(descriptions, side)
		}

		if len(descriptions) == 0 {
			return nil
		}

		if err := tx.Tasks.Update(ctx, task); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		recorder := audit.NewRecorder()
		recorder.RecordAll(task.ID, in.ActorID, descriptions, task.Status, now)
		written = recorder.Len()

		return tx.Histories.CreateBatch(ctx, recorder.Entries())
	})
	if err != nil {
		return nil, err
	}

	if written > 0 {
		metrics.HistoryEntries.Add(float64(written))
		logrus.WithFields(logrus.Fields{
			"task_id": id,
			"changes": written,
		}).Info("task updated")
	}

	return s.store.Tasks.FindByIDWithDetails(ctx, id)
}

// applyPatch mutates task with every field of in that differs and returns
// the differences in a fixed order: title, description, due date, status.
func applyPatch(task *model.Task, in UpdateTaskInput) []audit.Change {
	var changes []audit.Change

	if in.Title != "" && in.Title != task.Title {
		changes = append(changes, audit.TitleChange(task.Title, in.Title))
		task.Title = in.Title
	}

	if in.Description != "" && in.Description != task.Description {
		changes = append(changes, audit.DescriptionChange(task.Description, in.Description))
		task.Description = in.Description
	}

	if in.DueDate != nil && !in.DueDate.IsZero() && !in.DueDate.Equal(task.DueDate) {
		due := in.DueDate.UTC()
		changes = append(changes, audit.DueDateChange(task.DueDate, due))
		task.DueDate = due
	}

	if in.Status != 0 && in.Status != task.Status {
		changes = append(changes, audit.StatusChange(task.Status, in.Status))
		task.Status = in.Status
	}

	return changes
}

// syncCompletion keeps CompletedAt set iff the task is Completed and returns
// the side-effect description for the transition, if any.
func syncCompletion(task *model.Task, oldStatus constants.TaskStatus, now time.Time) string {
	side := audit.CompletionChange(oldStatus, task.Status)

	switch side {
	case audit.TaskMarkedCompleted:
		completedAt := now
		task.CompletedAt = &completedAt
	case audit.TaskUnmarkedCompleted:
		task.CompletedAt = nil
	}

	return side
}

// DeleteTask writes the removal to the task audit log, which has no foreign
// key to tasks, and deletes the task with its comments and history.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		task, err := tx.Tasks.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.TaskNotFound(id)
			}
			return err
		}

		if actorID == uuid.Nil {
			if actorID, err = fallbackActor(ctx, tx, task); err != nil {
				return err
			}
		}

		entry := &model.TaskAuditLog{
			TaskID:      task.ID,
			ProjectID:   task.ProjectID,
			UserID:      actorID,
			Description: audit.TaskRemoved(task.Title),
			Status:      task.Status,
			ChangedAt:   s.now(),
		}
		if err := tx.AuditLogs.Create(ctx, entry); err != nil {
			return fmt.Errorf("write audit log: %w", err)
		}

		return tx.Tasks.Delete(ctx, task.ID)
	})
	if err != nil {
		return err
	}

	metrics.TasksDeleted.Inc()
	logrus.WithField("task_id", id).Info("task deleted")
	return nil
}

// fallbackActor attributes an anonymous removal to the assignee, or to the
// project owner when the task is unassigned.
func fallbackActor(ctx context.Context, tx *repository.Store, task *model.Task) (uuid.UUID, error) {
	if task.UserID != nil {
		return *task.UserID, nil
	}
	project, err := tx.Projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		return uuid.Nil, err
	}
	return project.UserID, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.store.Tasks.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.TaskNotFound(id)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.Tasks.List(ctx)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	if _, err := s.store.Projects.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ProjectNotFound(projectID)
		}
		return nil, err
	}
	return s.store.Tasks.ListByProject(ctx, projectID)
}

func (s *TaskService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	if _, err := s.store.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.UserNotFound(userID)
		}
		return nil, err
	}
	return s.store.Tasks.ListByUser(ctx, userID)
}

func (s *TaskService) ListHistory(ctx context.Context, taskID uuid.UUID) ([]model.TaskHistory, error) {
	if _, err := s.store.Tasks.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.TaskNotFound(taskID)
		}
		return nil, err
	}
	return s.store.Histories.ListByTask(ctx, taskID)
}

// ListAuditLog returns the durable entries for a task, including ones
// written after the task was deleted.
func (s *TaskService) ListAuditLog(ctx context.Context, taskID uuid.UUID) ([]model.TaskAuditLog, error) {
	return s.store.AuditLogs.ListByTask(ctx, taskID)
}

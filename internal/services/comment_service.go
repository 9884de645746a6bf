package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"team-tracker.com/team-tracker/internal/audit"
	apperrors "team-tracker.com/team-tracker/internal/errors"
	"team-tracker.com/team-tracker/internal/metrics"
	model "team-tracker.com/team-tracker/internal/models"
	repository "team-tracker.com/team-tracker/internal/repositories"
)

type CommentService struct {
	store *repository.Store
	now   func() time.Time
}

func NewCommentService(store *repository.Store) *CommentService {
	return &CommentService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// AddComment stores the comment and a history entry quoting it in one commit.
func (s *CommentService) AddComment(ctx context.Context, taskID, userID uuid.UUID, content string) (*model.Comment, error) {
	comment := &model.Comment{
		ID:      uuid.New(),
		Content: content,
		TaskID:  taskID,
		UserID:  userID,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.TaskNotFound(taskID)
			}
			return err
		}

		if _, err := tx.Users.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.UserNotFound(userID)
			}
			return err
		}

		now := s.now()
		comment.CreatedAt = now
		comment.UpdatedAt = now
		if err := tx.Comments.Create(ctx, comment); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		recorder := audit.NewRecorder()
		recorder.Record(task.ID, userID, audit.CommentAdded(content), task.Status, now)
		return tx.Histories.CreateBatch(ctx, recorder.Entries())
	})
	if err != nil {
		return nil, err
	}

	metrics.CommentsAdded.Inc()
	metrics.HistoryEntries.Inc()
	logrus.WithFields(logrus.Fields{
		"comment_id": comment.ID,
		"task_id":    taskID,
	}).Info("comment added")

	return s.store.Comments.FindByID(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, err := s.store.Comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.CommentNotFound(id)
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.store.Tasks.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.TaskNotFound(taskID)
		}
		return nil, err
	}
	return s.store.Comments.ListByTask(ctx, taskID)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	if err := s.store.Comments.UpdateContent(ctx, id, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.CommentNotFound(id)
		}
		return nil, err
	}
	return s.store.Comments.FindByID(ctx, id)
}

func (s *CommentService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.CommentNotFound(id)
		}
		return err
	}
	return nil
}

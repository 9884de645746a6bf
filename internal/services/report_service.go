package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	apperrors "team-tracker.com/team-tracker/internal/errors"
	model "team-tracker.com/team-tracker/internal/models"
	repository "team-tracker.com/team-tracker/internal/repositories"
)

const performanceWindowDays = 30

type UserPerformance struct {
	User                            model.User
	CompletedTasks                  int64
	AverageCompletedTasksLast30Days float64
}

type ReportService struct {
	store *repository.Store
	now   func() time.Time
}

func NewReportService(store *repository.Store) *ReportService {
	return &ReportService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReportService) CompletedTasksSince(ctx context.Context, since time.Time) ([]model.Task, error) {
	return s.store.Reports.CompletedTasksSince(ctx, since.UTC())
}

func (s *ReportService) UsersWithCompletedTasks(ctx context.Context, userIDs []uuid.UUID) ([]model.User, error) {
	return s.store.Reports.UsersWithCompletedTasks(ctx, userIDs)
}

// Performance is manager-only: per user, completed tasks due in the last
// 30 days and their daily average.
func (s *ReportService) Performance(ctx context.Context, actorID uuid.UUID) ([]UserPerformance, error) {
	if actorID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	actor, err := s.store.Users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	if !actor.IsManager() {
		return nil, apperrors.ErrManagerOnly
	}

	since := s.now().AddDate(0, 0, -performanceWindowDays)
	counts, err := s.store.Reports.CompletedCountsByUser(ctx, since)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID]int64, len(counts))
	ids := make([]uuid.UUID, 0, len(counts))
	for _, c := range counts {
		byUser[c.UserID] = c.Completed
		ids = append(ids, c.UserID)
	}

	users, err := s.store.Reports.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	report := make([]UserPerformance, 0, len(users))
	for _, u := range users {
		completed := byUser[u.ID]
		report = append(report, UserPerformance{
			User:                            u,
			CompletedTasks:                  completed,
			AverageCompletedTasksLast30Days: float64(completed) / performanceWindowDays,
		})
	}
	return report, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Store groups the per-entity repositories over one *gorm.DB. Inside
// Transaction every repository shares the same transaction.
type Store struct {
	db *gorm.DB

	Tasks     *TaskRepository
	Projects  *ProjectRepository
	Users     *UserRepository
	Comments  *CommentRepository
	Histories *HistoryRepository
	AuditLogs *AuditLogRepository
	Reports   *ReportRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Tasks:     NewTaskRepository(db),
		Projects:  NewProjectRepository(db),
		Users:     NewUserRepository(db),
		Comments:  NewCommentRepository(db),
		Histories: NewHistoryRepository(db),
		AuditLogs: NewAuditLogRepository(db),
		Reports:   NewReportRepository(db),
	}
}

// Transaction commits once if fn returns nil and rolls everything back
// otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

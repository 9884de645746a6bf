package audit

import (
	"time"

	"github.com/google/uuid"

	"team-tracker.com/team-tracker/internal/constants"
	model "team-tracker.com/team-tracker/internal/models"
)

// Recorder stages history entries for a single unit of work. It never
// writes; the caller persists Entries() together with its own mutation.
type Recorder struct {
	entries []*model.TaskHistory
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(
	taskID uuid.UUID,
	userID uuid.UUID,
	description string,
	status constants.TaskStatus,
	at time.Time,
) *model.TaskHistory {
	snapshot := status
	entry := &model.TaskHistory{
		ID:          uuid.New(),
		TaskID:      taskID,
		UserID:      userID,
		Description: description,
		Status:      &snapshot,
		ChangedAt:   at,
		Sequence:    len(r.entries),
	}
	r.entries = append(r.entries, entry)
	return entry
}

// RecordAll stages one entry per description, sharing one timestamp.
func (r *Recorder) RecordAll(
	taskID uuid.UUID,
	userID uuid.UUID,
	descriptions []string,
	status constants.TaskStatus,
	at time.Time,
) {
	for _, d := range descriptions {
		r.Record(taskID, userID, d, status, at)
	}
}

func (r *Recorder) Entries() []*model.TaskHistory {
	return r.entries
}

func (r *Recorder) Len() int {
	return len(r.entries)
}

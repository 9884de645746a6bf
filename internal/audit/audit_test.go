package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-tracker.com/team-tracker/internal/constants"
)

func TestDescribe(t *testing.T) {
	oldDue := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	newDue := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	got := Describe([]Change{
		TitleChange("X", "Y"),
		DescriptionChange("antes", "depois"),
		DueDateChange(oldDue, newDue),
		StatusChange(constants.StatusInProgress, constants.StatusCompleted),
	})

	assert.Equal(t, []string{
		"Título alterado de 'X' para 'Y'",
		"Descrição alterada de 'antes' para 'depois'",
		"Data de entrega alterada de 02/03/2026 para 15/04/2026",
		"Status alterado de 'Em andamento' para 'Concluída'",
	}, got)
}

func TestDescribe_Empty(t *testing.T) {
	assert.Empty(t, Describe(nil))
}

func TestCompletionChange(t *testing.T) {
	tests := []struct {
		name string
		old  constants.TaskStatus
		new  constants.TaskStatus
		want string
	}{
		{"into completed", constants.StatusInProgress, constants.StatusCompleted, TaskMarkedCompleted},
		{"out of completed", constants.StatusCompleted, constants.StatusInProgress, TaskUnmarkedCompleted},
		{"completed to cancelled", constants.StatusCompleted, constants.StatusCancelled, TaskUnmarkedCompleted},
		{"unchanged completed", constants.StatusCompleted, constants.StatusCompleted, ""},
		{"unrelated", constants.StatusPending, constants.StatusInProgress, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionChange(tt.old, tt.new))
		})
	}
}

func TestRecorder_StagesInOrder(t *testing.T) {
	taskID, userID := uuid.New(), uuid.New()
	at := time.Now().UTC()

	r := NewRecorder()
	r.RecordAll(taskID, userID, []string{"a", "b", "c"}, constants.StatusCompleted, at)

	entries := r.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i, e.Sequence)
		assert.Equal(t, at, e.ChangedAt)
		assert.Equal(t, taskID, e.TaskID)
		assert.Equal(t, userID, e.UserID)
		require.NotNil(t, e.Status)
		assert.Equal(t, constants.StatusCompleted, *e.Status)
	}
	assert.Equal(t, "b", entries[1].Description)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Tarefa 'Deploy' foi removida", TaskRemoved("Deploy"))
	assert.Equal(t, `Comentário adicionado: "hello"`, CommentAdded("hello"))
}

func TestCommentAdded_KeepsContentVerbatim(t *testing.T) {
	content := "disse \"ok\"\nlinha 2 ção \\ fim"
	assert.Equal(t, "Comentário adicionado: \""+content+"\"", CommentAdded(content))
}

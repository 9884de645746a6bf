package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Labels(t *testing.T) {
	assert.Equal(t, "Pendente", StatusPending.Label())
	assert.Equal(t, "Concluída", StatusCompleted.Label())
	assert.Equal(t, "InProgress", StatusInProgress.String())
	assert.Equal(t, "Tarefa cancelada", StatusCancelled.Description())
}

func TestTaskStatus_IsValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), "status %d", s)
	}
	assert.False(t, TaskStatus(0).IsValid())
	assert.False(t, TaskStatus(5).IsValid())
	assert.Equal(t, "Unknown", TaskStatus(9).Label())
}

func TestTaskPriority(t *testing.T) {
	assert.True(t, PriorityUrgent.IsValid())
	assert.False(t, TaskPriority(0).IsValid())
	assert.Equal(t, "Prioridade média", PriorityMedium.Label())
	assert.Equal(t, "High", PriorityHigh.String())
}

func TestUserRole(t *testing.T) {
	assert.True(t, RoleManager.IsValid())
	assert.False(t, UserRole(3).IsValid())
	assert.Equal(t, "Gerente", RoleManager.Label())
}

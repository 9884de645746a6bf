package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "team-tracker.com/team-tracker/internal/configs"
	"team-tracker.com/team-tracker/internal/constants"
	model "team-tracker.com/team-tracker/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := config.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewStore(db)
}

func newTask(projectID uuid.UUID, title string) *model.Task {
	return &model.Task{
		Title:       title,
		Description: "desc",
		DueDate:     time.Now().Add(time.Hour).UTC(),
		Priority:    constants.PriorityMedium,
		Status:      constants.StatusPending,
		ProjectID:   projectID,
	}
}

func TestInsertWithinCapacity(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	owner := &model.User{Name: "Ana", Email: "ana@example.com", Role: constants.RoleDefault}
	require.NoError(t, store.Users.Create(ctx, owner))
	project := &model.Project{Name: "Infra", UserID: owner.ID}
	require.NoError(t, store.Projects.Create(ctx, project))

	for i := 0; i < 2; i++ {
		inserted, err := store.Tasks.InsertWithinCapacity(ctx, newTask(project.ID, fmt.Sprintf("task %d", i)), 2)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	full := newTask(project.ID, "over")
	inserted, err := store.Tasks.InsertWithinCapacity(ctx, full, 2)
	require.NoError(t, err)
	assert.False(t, inserted)

	_, err = store.Tasks.FindByID(ctx, full.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := store.Tasks.CountByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	inserted, err = store.Tasks.InsertWithinCapacity(ctx, newTask(project.ID, "raised"), 3)
	require.NoError(t, err)
	assert.True(t, inserted)

	count, err = store.Tasks.CountByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

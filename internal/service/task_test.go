package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/repository"
)

func newTestTaskService(t *testing.T) (*TaskService, int64) {
	t.Helper()

	database := newTestDB(t)
	auth := newTestAuthService(t, database)
	user, err := auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	return NewTaskService(repository.NewTaskRepository(database), nil), user.ID
}

func TestTaskServiceAddAndList(t *testing.T) {
	tasks, owner := newTestTaskService(t)
	ctx := context.Background()

	created, err := tasks.Add(ctx, owner, "  Buy milk  ", model.TaskStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, model.TaskStatusOpen, created.Status)
	assert.NotZero(t, created.ID)

	listed, err := tasks.Tasks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestTaskServiceRejectsEmptyTitle(t *testing.T) {
	tasks, owner := newTestTaskService(t)
	ctx := context.Background()

	_, err := tasks.Add(ctx, owner, "   ", model.TaskStatusOpen)
	assert.Error(t, err)

	created, err := tasks.Add(ctx, owner, "real", model.TaskStatusOpen)
	require.NoError(t, err)

	_, err = tasks.Update(ctx, owner, created.ID, "", model.TaskStatusDone)
	assert.Error(t, err)
}

func TestTaskServiceUpdate(t *testing.T) {
	tasks, owner := newTestTaskService(t)
	ctx := context.Background()

	created, err := tasks.Add(ctx, owner, "Buy milk", model.TaskStatusOpen)
	require.NoError(t, err)

	updated, err := tasks.Update(ctx, owner, created.ID, "Buy eggs", model.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, "Buy eggs", updated.Title)
	assert.Equal(t, model.TaskStatusDone, updated.Status)
	assert.True(t, updated.Done())

	_, err = tasks.Update(ctx, owner, 9999, "nope", model.TaskStatusOpen)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskServiceNormalizesStatus(t *testing.T) {
	tasks, owner := newTestTaskService(t)
	ctx := context.Background()

	created, err := tasks.Add(ctx, owner, "Buy milk", 42)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusOpen, created.Status)
}

func TestTaskServiceDelete(t *testing.T) {
	tasks, owner := newTestTaskService(t)
	ctx := context.Background()

	created, err := tasks.Add(ctx, owner, "Buy milk", model.TaskStatusOpen)
	require.NoError(t, err)

	require.NoError(t, tasks.Delete(ctx, owner, created.ID))

	err = tasks.Delete(ctx, owner, created.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	listed, err := tasks.Tasks(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

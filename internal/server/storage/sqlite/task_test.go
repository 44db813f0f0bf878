package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/storage"
)

func newTestTask(ownerID, title string, createdAt time.Time) *models.Task {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.NewTask(uuid.New().String(), ownerID, title, "description of "+title, due, createdAt)
}

func TestTaskStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestUser(t, ctx, s)
	bob := createTestUser(t, ctx, s)

	base := time.Now().Truncate(time.Millisecond)
	first := newTestTask(alice, "first", base)
	second := newTestTask(bob, "second", base.Add(time.Second))
	third := newTestTask(alice, "third", base.Add(2*time.Second))

	// вставляем не по порядку
	for _, task := range []*models.Task{third, first, second} {
		require.NoError(t, s.CreateTask(ctx, task))
	}

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Equal(t, third.ID, tasks[2].ID)

	// задачи всех пользователей видны в списке
	assert.Equal(t, alice, tasks[0].OwnerID)
	assert.Equal(t, bob, tasks[1].OwnerID)

	got := tasks[0]
	assert.Equal(t, first.Title, got.Title)
	assert.Equal(t, first.Description, got.Description)
	assert.False(t, got.Completed)
	require.NotNil(t, got.DueDate)
	assert.True(t, first.DueDate.Equal(*got.DueDate))
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, first.UpdatedAt.Equal(got.UpdatedAt))
}

func TestTaskStorage_ListTasks_Empty(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tasks, err := s.ListTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskStorage_CreateTask_UnknownOwner(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.CreateTask(context.Background(), newTestTask(uuid.New().String(), "orphan", time.Now()))
	assert.Error(t, err)
}

func TestTaskStorage_DeleteTask(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	other := createTestUser(t, ctx, s)
	task := newTestTask(owner, "to delete", time.Now())
	require.NoError(t, s.CreateTask(ctx, task))

	tests := []struct {
		wantError error
		name      string
		id        string
		ownerID   string
	}{
		{
			name:      "other owner",
			id:        task.ID,
			ownerID:   other,
			wantError: storage.ErrTaskNotFound,
		},
		{
			name:      "unknown id",
			id:        uuid.New().String(),
			ownerID:   owner,
			wantError: storage.ErrTaskNotFound,
		},
		{
			name:    "owner deletes",
			id:      task.ID,
			ownerID: owner,
		},
		{
			name:      "already deleted",
			id:        task.ID,
			ownerID:   owner,
			wantError: storage.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.DeleteTask(ctx, tt.id, tt.ownerID)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStorage_CompleteTask(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	other := createTestUser(t, ctx, s)
	task := newTestTask(owner, "to complete", time.Now().Add(-time.Hour).Truncate(time.Millisecond))
	require.NoError(t, s.CreateTask(ctx, task))

	_, err := s.CompleteTask(ctx, task.ID, other)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	completed, err := s.CompleteTask(ctx, task.ID, owner)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.Equal(t, task.Title, completed.Title)
	// updatedAt не обновляется
	assert.True(t, task.UpdatedAt.Equal(completed.UpdatedAt))

	// повторное завершение идемпотентно
	again, err := s.CompleteTask(ctx, task.ID, owner)
	require.NoError(t, err)
	assert.True(t, again.Completed)

	_, err = s.CompleteTask(ctx, uuid.New().String(), owner)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestTaskStorage_ReplaceTask(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	other := createTestUser(t, ctx, s)
	task := newTestTask(owner, "original", time.Now().Truncate(time.Millisecond))
	require.NoError(t, s.CreateTask(ctx, task))

	newDue := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("other owner", func(t *testing.T) {
		_, err := s.ReplaceTask(ctx, &models.Task{ID: task.ID, OwnerID: other, Title: "hijack"})
		assert.ErrorIs(t, err, storage.ErrTaskNotFound)
	})

	t.Run("full overwrite", func(t *testing.T) {
		updated, err := s.ReplaceTask(ctx, &models.Task{
			ID:          task.ID,
			OwnerID:     owner,
			Title:       "edited",
			Description: "new description",
			DueDate:     &newDue,
			Completed:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Title)
		assert.Equal(t, "new description", updated.Description)
		require.NotNil(t, updated.DueDate)
		assert.True(t, newDue.Equal(*updated.DueDate))
		assert.True(t, updated.Completed)
		assert.True(t, task.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, task.UpdatedAt.Equal(updated.UpdatedAt))
	})

	t.Run("omitted fields are cleared", func(t *testing.T) {
		updated, err := s.ReplaceTask(ctx, &models.Task{ID: task.ID, OwnerID: owner})
		require.NoError(t, err)
		assert.Empty(t, updated.Title)
		assert.Empty(t, updated.Description)
		assert.Nil(t, updated.DueDate)
		assert.False(t, updated.Completed)
	})
}

var _ storage.Storage = (*Storage)(nil)

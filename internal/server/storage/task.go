package storage

import (
	"context"

	"github.com/iudanet/tasktracker/internal/models"
)

// TaskStorage defines interface for task persistence.
// Every method that mutates an existing task matches both id and owner
// in a single statement; a task owned by someone else is reported as
// ErrTaskNotFound.
type TaskStorage interface {
	// CreateTask inserts a new task
	CreateTask(ctx context.Context, task *models.Task) error

	// DeleteTask deletes the task with given id owned by ownerID
	// Returns ErrTaskNotFound if nothing matched
	DeleteTask(ctx context.Context, id, ownerID string) error

	// CompleteTask sets completed = true and returns the updated task
	// Returns ErrTaskNotFound if nothing matched
	CompleteTask(ctx context.Context, id, ownerID string) (*models.Task, error)

	// ReplaceTask overwrites title, description, dueDate and completed of the
	// task matching task.ID and task.OwnerID and returns the stored record.
	// createdAt and updatedAt are left untouched.
	// Returns ErrTaskNotFound if nothing matched
	ReplaceTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// ListTasks returns every task in the storage regardless of owner,
	// ordered by creation time
	ListTasks(ctx context.Context) ([]*models.Task, error)
}

// Pinger reports whether the underlying database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

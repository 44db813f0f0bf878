package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/storage"
)

const taskColumns = `id, user_id, title, description, due_date, completed, created_at, updated_at`

// CreateTask inserts a task.
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query :=
		`INSERT INTO tasks (` + taskColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description, task.DueDate,
		task.Completed, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// DeleteTask removes the task matching id and owner.
func (s *Storage) DeleteTask(ctx context.Context, id, ownerID string) error {
	if !validIDs(id, ownerID) {
		return storage.ErrTaskNotFound
	}

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// CompleteTask sets completed on the task matching id and owner.
func (s *Storage) CompleteTask(ctx context.Context, id, ownerID string) (*models.Task, error) {
	if !validIDs(id, ownerID) {
		return nil, storage.ErrTaskNotFound
	}

	query :=
		`UPDATE tasks SET completed = TRUE
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + taskColumns

	return s.returningTask(ctx, query, id, ownerID)
}

// ReplaceTask overwrites title, description, due_date and completed of the
// task matching id and owner.
func (s *Storage) ReplaceTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if !validIDs(task.ID, task.OwnerID) {
		return nil, storage.ErrTaskNotFound
	}

	query :=
		`UPDATE tasks SET title = $1, description = $2, due_date = $3, completed = $4
		 WHERE id = $5 AND user_id = $6
		 RETURNING ` + taskColumns

	return s.returningTask(ctx, query,
		task.Title, task.Description, task.DueDate, task.Completed, task.ID, task.OwnerID)
}

// ListTasks returns every task ordered by creation time.
func (s *Storage) ListTasks(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tasks, nil
}

func (s *Storage) returningTask(ctx context.Context, query string, args ...any) (*models.Task, error) {
	task, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var dueDate sql.NullTime

	err := row.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Description,
		&dueDate, &task.Completed, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		due := dueDate.Time.UTC()
		task.DueDate = &due
	}
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()

	return task, nil
}

func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/storage"
	"github.com/iudanet/tasktracker/internal/validation"
)

// Messages returned to the caller by TaskService.
const (
	MsgAddFailed      = "Failed to add task"
	MsgRemoveFailed   = "Failed to remove task"
	MsgCompleteFailed = "Failed to complete task"
	MsgUpdateFailed   = "Failed to update task"
	MsgListFailed     = "Failed to retrieve tasks"
	MsgTaskNotFound   = "Task not found"
)

// TaskEdit is the full field set written by Edit. Empty DueDate clears the
// stored due date.
type TaskEdit struct {
	Title       string
	Description string
	DueDate     string
	Completed   bool
}

// TaskService implements task operations on behalf of an authenticated owner.
type TaskService struct {
	logger *slog.Logger
	tasks  storage.TaskStorage
	now    func() time.Time
	newID  func() string
}

// NewTaskService creates a TaskService backed by tasks.
func NewTaskService(logger *slog.Logger, tasks storage.TaskStorage) *TaskService {
	return &TaskService{
		logger: logger,
		tasks:  tasks,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create stores a new task owned by ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description, dueDate string) (*models.Task, error) {
	due, err := validation.ValidateNewTask(title, dueDate)
	if err != nil {
		return nil, newError(KindValidation, MsgAddFailed, err)
	}

	task := models.NewTask(s.newID(), ownerID, title, description, due, s.now())
	if err := s.tasks.CreateTask(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("user_id", ownerID),
			slog.Any("error", err))
		return nil, newError(KindInternal, MsgAddFailed, err)
	}

	s.logger.InfoContext(ctx, "task created",
		slog.String("task_id", task.ID),
		slog.String("user_id", ownerID))

	return task, nil
}

// Delete removes the task id if it belongs to ownerID.
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.tasks.DeleteTask(ctx, id, ownerID); err != nil {
		return s.mutationError(ctx, "delete", MsgRemoveFailed, id, ownerID, err)
	}

	s.logger.InfoContext(ctx, "task deleted",
		slog.String("task_id", id),
		slog.String("user_id", ownerID))

	return nil
}

// Complete marks the task id as completed if it belongs to ownerID.
func (s *TaskService) Complete(ctx context.Context, ownerID, id string) (*models.Task, error) {
	task, err := s.tasks.CompleteTask(ctx, id, ownerID)
	if err != nil {
		return nil, s.mutationError(ctx, "complete", MsgCompleteFailed, id, ownerID, err)
	}
	return task, nil
}

// Edit overwrites title, description, dueDate and completed of the task id
// if it belongs to ownerID. Fields left empty in edit are written as empty.
func (s *TaskService) Edit(ctx context.Context, ownerID, id string, edit TaskEdit) (*models.Task, error) {
	due, err := validation.ParseOptionalDueDate(edit.DueDate)
	if err != nil {
		return nil, newError(KindValidation, MsgUpdateFailed, err)
	}

	task, err := s.tasks.ReplaceTask(ctx, &models.Task{
		ID:          id,
		OwnerID:     ownerID,
		Title:       edit.Title,
		Description: edit.Description,
		DueDate:     due,
		Completed:   edit.Completed,
	})
	if err != nil {
		return nil, s.mutationError(ctx, "update", MsgUpdateFailed, id, ownerID, err)
	}
	return task, nil
}

// List returns the tasks of every user, not only the caller's.
func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks", slog.Any("error", err))
		return nil, newError(KindInternal, MsgListFailed, err)
	}
	return tasks, nil
}

// mutationError переводит ошибку хранилища в Error.
// Чужая задача неотличима от отсутствующей.
func (s *TaskService) mutationError(ctx context.Context, op, message, id, ownerID string, err error) error {
	if errors.Is(err, storage.ErrTaskNotFound) {
		return newError(KindNotFound, MsgTaskNotFound, nil)
	}

	s.logger.ErrorContext(ctx, "task "+op+" failed",
		slog.String("task_id", id),
		slog.String("user_id", ownerID),
		slog.Any("error", err))

	return newError(KindInternal, message, err)
}

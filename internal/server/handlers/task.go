package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/service"
	"github.com/iudanet/tasktracker/pkg/api"
)

// TaskManager выполняет операции над задачами от имени владельца
type TaskManager interface {
	Create(ctx context.Context, ownerID, title, description, dueDate string) (*models.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
	Complete(ctx context.Context, ownerID, id string) (*models.Task, error)
	Edit(ctx context.Context, ownerID, id string, edit service.TaskEdit) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
}

// TaskHandler обрабатывает запросы к задачам.
// Все маршруты закрыты AuthMiddleware.
type TaskHandler struct {
	logger *slog.Logger
	tasks  TaskManager
}

// NewTaskHandler создает новый handler для задач
func NewTaskHandler(logger *slog.Logger, tasks TaskManager) *TaskHandler {
	return &TaskHandler{
		logger: logger,
		tasks:  tasks,
	}
}

// Create обрабатывает POST /api/task
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(h.logger, w, service.MsgAddFailed, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.tasks.Create(r.Context(), user.ID, req.Title, req.Description, req.DueDate)
	if err != nil {
		sendServiceError(h.logger, w, err, service.MsgAddFailed)
		return
	}

	SendJSON(h.logger, w, api.TaskResponse{Message: "Task added successfully", Task: toAPITask(task)}, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/task/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		sendServiceError(h.logger, w, err, service.MsgRemoveFailed)
		return
	}

	SendJSON(h.logger, w, api.MessageResponse{Message: "Task removed successfully"}, http.StatusOK)
}

// Complete обрабатывает PATCH /api/task/{id}/complete
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Complete(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		sendServiceError(h.logger, w, err, service.MsgCompleteFailed)
		return
	}

	SendJSON(h.logger, w, api.TaskResponse{Message: "Task marked as completed", Task: toAPITask(task)}, http.StatusOK)
}

// Edit обрабатывает PUT /api/task/{id}
// Полная перезапись: отсутствующие в теле поля затираются
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	// Пустое тело это перезапись всеми пустыми полями, а не ошибка
	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		SendError(h.logger, w, service.MsgUpdateFailed, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.tasks.Edit(r.Context(), user.ID, r.PathValue("id"), service.TaskEdit{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		sendServiceError(h.logger, w, err, service.MsgUpdateFailed)
		return
	}

	SendJSON(h.logger, w, api.TaskResponse{Message: "Task updated successfully", Task: toAPITask(task)}, http.StatusOK)
}

// List обрабатывает GET /api/task
// Возвращает задачи всех пользователей, а не только вызывающего
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.user(w, r); !ok {
		return
	}

	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		sendServiceError(h.logger, w, err, service.MsgListFailed)
		return
	}

	resp := make([]*api.Task, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toAPITask(t))
	}

	SendJSON(h.logger, w, resp, http.StatusOK)
}

// user достает владельца запроса; без AuthMiddleware отвечает 401
func (h *TaskHandler) user(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "task route reached without authenticated user")
		SendError(h.logger, w, "No token provided", "", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

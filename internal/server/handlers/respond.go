package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/service"
	"github.com/iudanet/tasktracker/pkg/api"
)

// SendJSON отправляет JSON ответ
func SendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// SendError отправляет JSON ответ с ошибкой. detail попадает в поле error.
func SendError(logger *slog.Logger, w http.ResponseWriter, message, detail string, statusCode int) {
	SendJSON(logger, w, api.ErrorResponse{Message: message, Error: detail}, statusCode)
}

// sendServiceError переводит ошибку сервиса в HTTP ответ
func sendServiceError(logger *slog.Logger, w http.ResponseWriter, err error, fallback string) {
	var serr *service.Error
	if !errors.As(err, &serr) {
		SendError(logger, w, fallback, err.Error(), http.StatusInternalServerError)
		return
	}
	SendError(logger, w, serr.Message, serr.Detail(), StatusForKind(serr.Kind))
}

// sendServiceErrorStatus как sendServiceError, но всегда со статусом status
func sendServiceErrorStatus(logger *slog.Logger, w http.ResponseWriter, err error, fallback string, status int) {
	var serr *service.Error
	if !errors.As(err, &serr) {
		SendError(logger, w, fallback, err.Error(), status)
		return
	}
	SendError(logger, w, serr.Message, serr.Detail(), status)
}

// StatusForKind возвращает HTTP статус для вида ошибки
func StatusForKind(kind service.Kind) int {
	switch kind {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindAuthentication:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func toAPITask(t *models.Task) *api.Task {
	if t == nil {
		return nil
	}
	return &api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		UserID:      t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

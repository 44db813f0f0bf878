package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/service"
	"github.com/iudanet/tasktracker/pkg/api"
)

// Authenticator регистрирует пользователей и выдает токены
type Authenticator interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger *slog.Logger
	auth   Authenticator
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, auth Authenticator) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   auth,
	}
}

// Signup обрабатывает POST /api/auth/signup
// Регистрация нового пользователя, токен не выдается
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		SendError(h.logger, w, service.MsgRegistrationFailed, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.auth.Signup(ctx, req.Username, req.Email, req.Password); err != nil {
		// Регистрация отвечает 400 на любую ошибку, в том числе на сбой хранилища
		sendServiceErrorStatus(h.logger, w, err, service.MsgRegistrationFailed, http.StatusBadRequest)
		return
	}

	SendJSON(h.logger, w, api.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

// Login обрабатывает POST /api/auth/login
// Проверка email и пароля, выдача JWT на один час
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		SendError(h.logger, w, service.MsgCredentialsMissing, err.Error(), http.StatusBadRequest)
		return
	}

	// Проверяем пароль и выдаем токен
	token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		sendServiceError(h.logger, w, err, service.MsgLoginFailed)
		return
	}

	SendJSON(h.logger, w, api.TokenResponse{Token: token}, http.StatusOK)
}

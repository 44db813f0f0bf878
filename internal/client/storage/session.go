package storage

import (
	"context"
)

// SessionStorage хранит сессию текущего пользователя CLI.
// Хранится одна сессия: повторный login перезаписывает предыдущую.
type SessionStorage interface {
	// SaveSession stores session as-is
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns ErrSessionNotFound if user is not logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if session exists and token is not expired
	IsAuthenticated(ctx context.Context) (bool, error)
}

// Session данные сессии, полученные при login
type Session struct {
	Email     string `json:"email"`
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds, из claim exp
}

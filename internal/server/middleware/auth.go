package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/handlers"
	"github.com/iudanet/tasktracker/internal/server/jwt"
	"github.com/iudanet/tasktracker/internal/server/storage"
)

// Сообщения 401 ответов
const (
	MsgNoToken            = "No token provided"
	MsgVerificationFailed = "Token verification failed"
	MsgInvalidToken       = "Invalid token"
)

const bearerPrefix = "Bearer "

// TokenVerifier проверяет подпись и срок действия токена
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// UserResolver находит владельца токена
type UserResolver interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// AuthMiddleware создает middleware для проверки bearer токена.
// Найденный пользователь кладется в контекст запроса.
func AuthMiddleware(logger *slog.Logger, tokens TokenVerifier, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// заголовка может не быть вовсе
			values, present := r.Header[http.CanonicalHeaderKey("Authorization")]
			if !present || len(values) == 0 {
				logger.WarnContext(ctx, "missing Authorization header")
				handlers.SendError(logger, w, MsgNoToken, "", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(values[0], bearerPrefix)
			if token == "" {
				logger.WarnContext(ctx, "empty bearer token")
				handlers.SendError(logger, w, MsgNoToken, "", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				logger.WarnContext(ctx, "token verification failed", slog.Any("error", err))
				handlers.SendError(logger, w, MsgVerificationFailed, "", http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByID(ctx, claims.UserID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.WarnContext(ctx, "token refers to unknown user", slog.String("user_id", claims.UserID))
					handlers.SendError(logger, w, MsgInvalidToken, "", http.StatusUnauthorized)
					return
				}
				logger.ErrorContext(ctx, "failed to resolve token user", slog.Any("error", err))
				handlers.SendError(logger, w, MsgVerificationFailed, "", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.String("user_id", user.ID))

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, user)))
		})
	}
}

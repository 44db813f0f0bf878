package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/password"
	"github.com/iudanet/tasktracker/internal/server/storage"
	"github.com/iudanet/tasktracker/internal/validation"
)

// Messages returned to the caller by AuthService.
const (
	MsgRegistrationFailed = "Registration failed"
	MsgCredentialsMissing = "Email and password are required"
	MsgInvalidCredentials = "Invalid email or password"
	MsgLoginFailed        = "Login failed"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer signs bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService implements signup and login.
type AuthService struct {
	logger    *slog.Logger
	users     storage.UserStorage
	hasher    PasswordHasher
	tokens    TokenIssuer
	now       func() time.Time
	dummyHash string
}

// NewAuthService wires the credential store, hasher and token issuer.
func NewAuthService(logger *slog.Logger, users storage.UserStorage, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	s := &AuthService{
		logger: logger,
		users:  users,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}

	// хеш для выравнивания времени ответа при неизвестном email
	if h, err := hasher.Hash(uuid.NewString()); err == nil {
		s.dummyHash = h
	}

	return s
}

// Signup creates a user with a freshly hashed password. No token is issued.
func (s *AuthService) Signup(ctx context.Context, username, email, plainPassword string) (*models.User, error) {
	if err := validation.ValidateSignup(username, email, plainPassword); err != nil {
		return nil, newError(KindValidation, MsgRegistrationFailed, err)
	}

	// Хешируем пароль, plaintext дальше не идет
	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) || errors.Is(err, password.ErrPasswordTooLong) {
			return nil, newError(KindValidation, MsgRegistrationFailed, err)
		}
		s.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		return nil, newError(KindInternal, MsgRegistrationFailed, err)
	}

	// Генерируем UUID для пользователя
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	// Сохраняем в БД, уникальность username и email проверяет хранилище
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			s.logger.WarnContext(ctx, "registration conflict", slog.String("username", username))
			return nil, newError(KindConflict, MsgRegistrationFailed, err)
		}
		s.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		return nil, newError(KindInternal, MsgRegistrationFailed, err)
	}

	s.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	return user, nil
}

// Login verifies email and password and issues a one-hour bearer token.
// Unknown email and wrong password fail with the same message.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	if err := validation.ValidateLogin(email, plainPassword); err != nil {
		return "", newError(KindValidation, MsgCredentialsMissing, nil)
	}

	// Получаем пользователя из БД
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.hasher.Compare(s.dummyHash, plainPassword)
			s.logger.WarnContext(ctx, "login failed: unknown email")
			return "", newError(KindAuthentication, MsgInvalidCredentials, nil)
		}
		s.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		return "", newError(KindInternal, MsgLoginFailed, err)
	}

	// Проверяем bcrypt хеш
	if !s.hasher.Compare(user.PasswordHash, plainPassword) {
		s.logger.WarnContext(ctx, "login failed: wrong password", slog.String("user_id", user.ID))
		return "", newError(KindAuthentication, MsgInvalidCredentials, nil)
	}

	// Генерируем JWT access token
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		return "", newError(KindInternal, MsgLoginFailed, err)
	}

	s.logger.InfoContext(ctx, "user logged in successfully", slog.String("user_id", user.ID))

	return token, nil
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/service"
	"github.com/iudanet/tasktracker/pkg/api"
)

// mockAuthenticator is a mock implementation of Authenticator for testing
type mockAuthenticator struct {
	signupErr error
	loginErr  error
	token     string
	gotEmail  string
}

func (m *mockAuthenticator) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	m.gotEmail = email
	if m.signupErr != nil {
		return nil, m.signupErr
	}
	return &models.User{ID: "u1", Username: username, Email: email}, nil
}

func (m *mockAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	m.gotEmail = email
	if m.loginErr != nil {
		return "", m.loginErr
	}
	return m.token, nil
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		signupErr  error
		name       string
		body       string
		wantMsg    string
		wantDetail string
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			wantStatus: http.StatusCreated,
			wantMsg:    "User registered successfully",
		},
		{
			name: "conflict",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			signupErr: &service.Error{
				Kind:    service.KindConflict,
				Message: service.MsgRegistrationFailed,
				Err:     errors.New("user already exists: UNIQUE constraint failed: users.email"),
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgRegistrationFailed,
			wantDetail: "UNIQUE constraint failed: users.email",
		},
		{
			name: "validation",
			body: `{"username":"alice"}`,
			signupErr: &service.Error{
				Kind:    service.KindValidation,
				Message: service.MsgRegistrationFailed,
				Err:     errors.New("email is required"),
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgRegistrationFailed,
			wantDetail: "email is required",
		},
		{
			name: "store failure is still 400",
			body: `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			signupErr: &service.Error{
				Kind:    service.KindInternal,
				Message: service.MsgRegistrationFailed,
				Err:     errors.New("database is locked"),
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgRegistrationFailed,
			wantDetail: "database is locked",
		},
		{
			name:       "non service error is 400",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			signupErr:  errors.New("boom"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgRegistrationFailed,
			wantDetail: "boom",
		},
		{
			name:       "invalid json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgRegistrationFailed,
			wantDetail: "unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(setupTestLogger(), &mockAuthenticator{signupErr: tt.signupErr})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Signup(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, tt.wantMsg, resp.Message)
			if tt.wantDetail != "" {
				assert.Contains(t, resp.Error, tt.wantDetail)
			} else {
				assert.Empty(t, resp.Error)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		loginErr   error
		name       string
		body       string
		wantMsg    string
		wantToken  string
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"email":"alice@example.com","password":"secret"}`,
			wantStatus: http.StatusOK,
			wantToken:  "signed.jwt.token",
		},
		{
			name:       "missing fields",
			body:       `{"email":"alice@example.com"}`,
			loginErr:   &service.Error{Kind: service.KindValidation, Message: service.MsgCredentialsMissing},
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgCredentialsMissing,
		},
		{
			name:       "bad credentials",
			body:       `{"email":"alice@example.com","password":"wrong"}`,
			loginErr:   &service.Error{Kind: service.KindAuthentication, Message: service.MsgInvalidCredentials},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.MsgInvalidCredentials,
		},
		{
			name:       "internal",
			body:       `{"email":"alice@example.com","password":"secret"}`,
			loginErr:   &service.Error{Kind: service.KindInternal, Message: service.MsgLoginFailed, Err: errors.New("disk I/O error")},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    service.MsgLoginFailed,
		},
		{
			name:       "non service error falls back to 500",
			body:       `{"email":"alice@example.com","password":"secret"}`,
			loginErr:   errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    service.MsgLoginFailed,
		},
		{
			name:       "invalid json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.MsgCredentialsMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthenticator{loginErr: tt.loginErr, token: "signed.jwt.token"}
			handler := NewAuthHandler(setupTestLogger(), auth)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantToken != "" {
				resp := decodeBody[api.TokenResponse](t, w)
				assert.Equal(t, tt.wantToken, resp.Token)
				assert.Equal(t, "alice@example.com", auth.gotEmail)
				return
			}
			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusForKind(service.KindValidation))
	assert.Equal(t, http.StatusBadRequest, StatusForKind(service.KindConflict))
	assert.Equal(t, http.StatusUnauthorized, StatusForKind(service.KindAuthentication))
	assert.Equal(t, http.StatusNotFound, StatusForKind(service.KindNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusForKind(service.KindInternal))
	assert.Equal(t, http.StatusInternalServerError, StatusForKind(service.Kind(0)))
}

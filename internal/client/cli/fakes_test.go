package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/client/iocli"
	"github.com/iudanet/tasktracker/internal/client/storage"
	"github.com/iudanet/tasktracker/pkg/api"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fakeAPI записывает запросы и возвращает заранее заданные ответы
type fakeAPI struct {
	err error

	signupReq   *api.SignupRequest
	loginReq    *api.LoginRequest
	createReq   *api.TaskRequest
	editReq     *api.TaskRequest
	token       string
	completedID string
	editedID    string
	deletedID   string

	loginToken string
	tasks      []api.Task
}

func (f *fakeAPI) Signup(ctx context.Context, req api.SignupRequest) (*api.MessageResponse, error) {
	f.signupReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &api.MessageResponse{Message: "User registered successfully"}, nil
}

func (f *fakeAPI) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	f.loginReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &api.TokenResponse{Token: f.loginToken}, nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, token string, req api.TaskRequest) (*api.TaskResponse, error) {
	f.token = token
	f.createReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &api.TaskResponse{
		Message: "Task added successfully",
		Task:    &api.Task{ID: "new-id", Title: req.Title, Description: req.Description},
	}, nil
}

func (f *fakeAPI) ListTasks(ctx context.Context, token string) ([]api.Task, error) {
	f.token = token
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

func (f *fakeAPI) CompleteTask(ctx context.Context, token, id string) (*api.TaskResponse, error) {
	f.token = token
	f.completedID = id
	if f.err != nil {
		return nil, f.err
	}
	return &api.TaskResponse{Message: "Task marked as completed", Task: &api.Task{ID: id, Completed: true}}, nil
}

func (f *fakeAPI) EditTask(ctx context.Context, token, id string, req api.TaskRequest) (*api.TaskResponse, error) {
	f.token = token
	f.editedID = id
	f.editReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &api.TaskResponse{Message: "Task updated successfully", Task: &api.Task{ID: id, Title: req.Title}}, nil
}

func (f *fakeAPI) DeleteTask(ctx context.Context, token, id string) (*api.MessageResponse, error) {
	f.token = token
	f.deletedID = id
	if f.err != nil {
		return nil, f.err
	}
	return &api.MessageResponse{Message: "Task removed successfully"}, nil
}

// memSessions хранит сессию в памяти
type memSessions struct {
	session    *storage.Session
	authChecks int
}

func (m *memSessions) SaveSession(ctx context.Context, session *storage.Session) error {
	m.session = session
	return nil
}

func (m *memSessions) GetSession(ctx context.Context) (*storage.Session, error) {
	if m.session == nil {
		return nil, storage.ErrSessionNotFound
	}
	return m.session, nil
}

func (m *memSessions) DeleteSession(ctx context.Context) error {
	if m.session == nil {
		return storage.ErrSessionNotFound
	}
	m.session = nil
	return nil
}

func (m *memSessions) IsAuthenticated(ctx context.Context) (bool, error) {
	m.authChecks++
	if m.session == nil {
		return false, nil
	}
	return testNow.Before(time.Unix(m.session.ExpiresAt, 0)), nil
}

// newTestCli собирает Cli с вводом input и буфером вывода
func newTestCli(input string, fake *fakeAPI, sessions *memSessions) (*Cli, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(iocli.NewStdio(strings.NewReader(input), &out), fake, sessions)
	c.now = func() time.Time { return testNow }
	return c, &out
}

func loggedIn(userID string) *memSessions {
	return &memSessions{session: &storage.Session{
		Email:     "alice@example.com",
		UserID:    userID,
		Token:     "tok-" + userID,
		ExpiresAt: testNow.Add(time.Hour).Unix(),
	}}
}

// signedToken выпускает токен того же вида, что и сервер
func signedToken(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return token
}

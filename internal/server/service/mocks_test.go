package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/server/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage is an in-memory UserStorage
type mockUserStorage struct {
	users       map[string]*models.User // id -> User
	createError error
	getError    error
	mu          sync.Mutex
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return m.createError
	}
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return storage.ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	u, ok := m.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return u, nil
}

// mockTaskStorage is an in-memory TaskStorage
type mockTaskStorage struct {
	tasks map[string]*models.Task
	err   error
	order []string
	mu    sync.Mutex
}

func newMockTaskStorage() *mockTaskStorage {
	return &mockTaskStorage{tasks: make(map[string]*models.Task)}
}

func (m *mockTaskStorage) CreateTask(ctx context.Context, task *models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cp := *task
	m.tasks[task.ID] = &cp
	m.order = append(m.order, task.ID)
	return nil
}

func (m *mockTaskStorage) owned(id, ownerID string) (*models.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, storage.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockTaskStorage) DeleteTask(ctx context.Context, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.owned(id, ownerID); err != nil {
		return err
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskStorage) CompleteTask(ctx context.Context, id, ownerID string) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, err := m.owned(id, ownerID)
	if err != nil {
		return nil, err
	}
	t.Completed = true
	cp := *t
	return &cp, nil
}

func (m *mockTaskStorage) ReplaceTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, err := m.owned(task.ID, task.OwnerID)
	if err != nil {
		return nil, err
	}
	t.Title = task.Title
	t.Description = task.Description
	t.DueDate = task.DueDate
	t.Completed = task.Completed
	cp := *t
	return &cp, nil
}

func (m *mockTaskStorage) ListTasks(ctx context.Context) ([]*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*models.Task, 0, len(m.tasks))
	for _, id := range m.order {
		if t, ok := m.tasks[id]; ok {
			cp := *t
			result = append(result, &cp)
		}
	}
	return result, nil
}

// fakeHasher "хеширует" префиксом, чтобы тесты не тратили время на bcrypt
type fakeHasher struct {
	hashErr  error
	compared []string
	mu       sync.Mutex
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Compare(hash, password string) bool {
	h.mu.Lock()
	h.compared = append(h.compared, hash)
	h.mu.Unlock()
	return strings.TrimPrefix(hash, "hashed:") == password && strings.HasPrefix(hash, "hashed:")
}

type fakeIssuer struct {
	err    error
	issued []string
}

func (f *fakeIssuer) Issue(userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = append(f.issued, userID)
	return "token-for-" + userID, nil
}

var errDB = errors.New("database is locked")

func sortedTitles(tasks []*models.Task) []string {
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}
	sort.Strings(titles)
	return titles
}

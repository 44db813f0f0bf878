package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	client "github.com/iudanet/tasktracker/internal/client/api"
	"github.com/iudanet/tasktracker/internal/client/storage"
	"github.com/iudanet/tasktracker/pkg/api"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated. Please run 'tasktracker login' first")
	ErrSessionExpired   = errors.New("session expired. Please run 'tasktracker login' again")
	ErrMissingID        = errors.New("missing task ID")
)

const dueLayout = "2006-01-02"

// session возвращает действующую сессию
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	// Срок действия проверяет хранилище
	ok, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check authentication: %w", err)
	}

	s, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	// Сессия есть, но токен истек
	if !ok {
		return nil, ErrSessionExpired
	}
	return s, nil
}

// sessionFromToken читает id и exp из токена без проверки подписи.
// Секрет есть только у сервера, он и проверяет токен при каждом запросе.
func sessionFromToken(email, token string) (*storage.Session, error) {
	claims := gojwt.MapClaims{}
	if _, _, err := gojwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("token has no expiry")
	}

	userID, _ := claims["id"].(string)

	return &storage.Session{
		Email:     email,
		UserID:    userID,
		Token:     token,
		ExpiresAt: exp.Unix(),
	}, nil
}

// requestFailed оборачивает ошибку сервера, для 401 подсказывает login
func requestFailed(op string, err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("%s: %w. Please run 'tasktracker login' again", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// taskID возвращает единственный позиционный аргумент
func taskID(fs *flag.FlagSet) (string, error) {
	if fs.NArg() == 0 || fs.Arg(0) == "" {
		return "", ErrMissingID
	}
	if fs.NArg() > 1 {
		return "", fmt.Errorf("unexpected arguments: %v", fs.Args()[1:])
	}
	return fs.Arg(0), nil
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	return due.UTC().Format(dueLayout)
}

func (c *Cli) printTask(t *api.Task) {
	if t == nil {
		return
	}
	c.io.Printf("ID:          %s\n", t.ID)
	c.io.Printf("Title:       %s\n", t.Title)
	if t.Description != "" {
		c.io.Printf("Description: %s\n", t.Description)
	}
	c.io.Printf("Due:         %s\n", formatDue(t.DueDate))
	c.io.Printf("Completed:   %t\n", t.Completed)
}

func (c *Cli) printTasks(tasks []api.Task) error {
	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDUE\tTITLE\tOWNER")
	for _, t := range tasks {
		done := " "
		if t.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, done, formatDue(t.DueDate), t.Title, t.UserID)
	}
	return tw.Flush()
}

// Package cli реализует команды терминального клиента.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/tasktracker/internal/client/iocli"
	"github.com/iudanet/tasktracker/internal/client/storage"
	"github.com/iudanet/tasktracker/pkg/api"
)

// TaskAPI операции сервера, которые использует клиент
type TaskAPI interface {
	Signup(ctx context.Context, req api.SignupRequest) (*api.MessageResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	CreateTask(ctx context.Context, token string, req api.TaskRequest) (*api.TaskResponse, error)
	ListTasks(ctx context.Context, token string) ([]api.Task, error)
	CompleteTask(ctx context.Context, token, id string) (*api.TaskResponse, error)
	EditTask(ctx context.Context, token, id string, req api.TaskRequest) (*api.TaskResponse, error)
	DeleteTask(ctx context.Context, token, id string) (*api.MessageResponse, error)
}

type Cli struct {
	io       iocli.IO
	api      TaskAPI
	sessions storage.SessionStorage
	now      func() time.Time
}

func New(stdio iocli.IO, apiClient TaskAPI, sessions storage.SessionStorage) *Cli {
	return &Cli{
		io:       stdio,
		api:      apiClient,
		sessions: sessions,
		now:      time.Now,
	}
}

func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Task Tracker Client")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasktracker [OPTIONS] COMMAND [ARGS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -version                     Show version information")
	fmt.Fprintln(w, "  -server URL                  Server URL (default: http://localhost:5000)")
	fmt.Fprintln(w, "  -db PATH                     Path to local session database (default: tasktracker-client.db)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  signup                       Register new user")
	fmt.Fprintln(w, "  login                        Login and save session")
	fmt.Fprintln(w, "  logout                       Delete local session")
	fmt.Fprintln(w, "  status                       Show authentication status")
	fmt.Fprintln(w, "  add [-title T] [-desc D] [-due DATE]")
	fmt.Fprintln(w, "                               Add new task, missing fields are prompted")
	fmt.Fprintln(w, "  list [-mine]                 List tasks")
	fmt.Fprintln(w, "  done <id>                    Mark task as completed")
	fmt.Fprintln(w, "  edit [-title T] [-desc D] [-due DATE] [-done=BOOL] <id>")
	fmt.Fprintln(w, "                               Edit task, omitted flags keep current values")
	fmt.Fprintln(w, "  rm [-y] <id>                 Remove task")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DATE is YYYY-MM-DD or RFC 3339. 'edit -due \"\"' clears the due date.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  tasktracker signup")
	fmt.Fprintln(w, "  tasktracker login")
	fmt.Fprintln(w, "  tasktracker add -title 'Buy milk' -due 2024-01-01")
	fmt.Fprintln(w, "  tasktracker list -mine")
	fmt.Fprintln(w, "  tasktracker edit -title 'Buy oat milk' b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Fprintln(w, "  tasktracker -server https://example.com rm -y b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
}

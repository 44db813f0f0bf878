package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/tasktracker/pkg/api"
)

// runEdit отправляет полную замену задачи.
// Сервер перезаписывает все поля, поэтому незаданные флаги берутся из текущей версии.
func (c *Cli) runEdit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit")
	title := fs.String("title", "", "new title")
	desc := fs.String("desc", "", "new description")
	due := fs.String("due", "", "new due date, empty clears it")
	done := fs.Bool("done", false, "completion flag")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	id, err := taskID(fs)
	if err != nil {
		return fmt.Errorf("%w. Usage: tasktracker edit [flags] <id>", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if len(set) == 0 {
		return errors.New("nothing to change. Use -title, -desc, -due or -done")
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	tasks, err := c.api.ListTasks(ctx, session.Token)
	if err != nil {
		return requestFailed("failed to load task", err)
	}

	var current *api.Task
	for i := range tasks {
		if tasks[i].ID == id {
			current = &tasks[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("task not found with ID: %s", id)
	}

	req := api.TaskRequest{
		Title:       current.Title,
		Description: current.Description,
		Completed:   current.Completed,
	}
	if current.DueDate != nil {
		req.DueDate = current.DueDate.UTC().Format(time.RFC3339)
	}
	if set["title"] {
		req.Title = *title
	}
	if set["desc"] {
		req.Description = *desc
	}
	if set["due"] {
		req.DueDate = *due
	}
	if set["done"] {
		req.Completed = *done
	}

	resp, err := c.api.EditTask(ctx, session.Token, id, req)
	if err != nil {
		return requestFailed("failed to edit task", err)
	}

	c.io.Printf("✓ %s\n", resp.Message)
	c.printTask(resp.Task)

	return nil
}

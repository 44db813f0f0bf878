package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tasktracker/pkg/api"
)

// runList показывает все задачи, которые отдает сервер.
// -mine оставляет только задачи текущего пользователя.
func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	mine := fs.Bool("mine", false, "show only own tasks")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	tasks, err := c.api.ListTasks(ctx, session.Token)
	if err != nil {
		return requestFailed("failed to list tasks", err)
	}

	if *mine {
		own := make([]api.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.UserID == session.UserID {
				own = append(own, t)
			}
		}
		tasks = own
	}

	if len(tasks) == 0 {
		c.io.Println("No tasks found.")
		c.io.Println("Use 'tasktracker add' to add your first task.")
		return nil
	}

	c.io.Printf("Found %d task(s):\n\n", len(tasks))
	return c.printTasks(tasks)
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tasktracker/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("add")
	title := fs.String("title", "", "task title")
	desc := fs.String("desc", "", "task description")
	due := fs.String("due", "", "due date, YYYY-MM-DD or RFC 3339")
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

	// без флагов спрашиваем все поля, иначе только недостающие обязательные
	interactive := fs.NFlag() == 0

	if *title == "" {
		if *title, err = c.io.ReadInput("Title: "); err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}
	if interactive {
		if *desc, err = c.io.ReadInput("Description (optional): "); err != nil {
			return fmt.Errorf("failed to read description: %w", err)
		}
	}
	if *due == "" {
		if *due, err = c.io.ReadInput("Due date (YYYY-MM-DD): "); err != nil {
			return fmt.Errorf("failed to read due date: %w", err)
		}
	}

	resp, err := c.api.CreateTask(ctx, session.Token, api.TaskRequest{
		Title:       *title,
		Description: *desc,
		DueDate:     *due,
	})
	if err != nil {
		return requestFailed("failed to add task", err)
	}

	c.io.Printf("✓ %s\n", resp.Message)
	c.printTask(resp.Task)

	return nil
}

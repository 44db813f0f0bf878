package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDone(ctx context.Context, args []string) error {
	fs := newFlagSet("done")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	id, err := taskID(fs)
	if err != nil {
		return fmt.Errorf("%w. Usage: tasktracker done <id>", err)
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	resp, err := c.api.CompleteTask(ctx, session.Token, id)
	if err != nil {
		return requestFailed("failed to complete task", err)
	}

	c.io.Printf("✓ %s\n", resp.Message)
	c.printTask(resp.Task)

	return nil
}

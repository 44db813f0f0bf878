package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	fs := newFlagSet("rm")
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	id, err := taskID(fs)
	if err != nil {
		return fmt.Errorf("%w. Usage: tasktracker rm [-y] <id>", err)
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	if !*yes {
		confirm, err := c.io.ReadInput(fmt.Sprintf("Remove task %s? (yes/no): ", id))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if confirm != "yes" && confirm != "y" {
			c.io.Println("Removal cancelled.")
			return nil
		}
	}

	resp, err := c.api.DeleteTask(ctx, session.Token, id)
	if err != nil {
		return requestFailed("failed to remove task", err)
	}

	c.io.Printf("✓ %s\n", resp.Message)

	return nil
}

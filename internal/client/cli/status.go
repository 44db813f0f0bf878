package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/tasktracker/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'tasktracker login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0).UTC()
	remaining := expiresAt.Sub(c.now())

	if remaining <= 0 {
		c.io.Println("Status: Session expired")
		c.io.Printf("Email: %s\n", session.Email)
		c.io.Println("⚠️  Token has expired. Please login again.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email: %s\n", session.Email)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))

	return nil
}

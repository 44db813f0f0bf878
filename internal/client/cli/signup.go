package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/tasktracker/pkg/api"
)

func (c *Cli) runSignup(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return errors.New("passwords do not match")
	}

	resp, err := c.api.Signup(ctx, api.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return requestFailed("registration failed", err)
	}

	c.io.Println()
	c.io.Printf("✓ %s\n", resp.Message)
	c.io.Println("Please run 'tasktracker login' to start using the service.")

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand команда не поддерживается
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду с аргументами args (без имени команды)
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return c.runSignup(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "done":
		return c.runDone(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "rm":
		return c.runRemove(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/nexuslink/nlink/internal/actions"
	"github.com/nexuslink/nlink/internal/parse"
	"github.com/nexuslink/nlink/internal/status"
)

// Execute dispatches one command line. Blank lines and # comments are no-ops.
// A line that matches no route is reported as an unknown command with
// suggestions for its first word.
func (c *CLI) Execute(ctx context.Context, line string) error {
	if err := c.ready(); err != nil {
		return err
	}

	line = strings.TrimLeft(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	c.app.Logger.Info("execute: %s", line)
	err := c.router.Execute(ctx, line)
	if errors.Is(err, status.ErrNotFound) {
		if _, _, matched := c.router.Match(line); !matched {
			err = c.unknown(line)
		}
	}
	if err != nil {
		c.app.Logger.Warn("command %q failed: %v", line, err)
	}

	c.recordHistory(line, err == nil)
	return err
}

// ExecuteMinimal runs a command in minimal syntax without going through the
// router.
func (c *CLI) ExecuteMinimal(ctx context.Context, input string) error {
	if err := c.ready(); err != nil {
		return err
	}

	m, err := parse.ParseMinimal(input)
	if err == nil {
		c.app.Logger.Info("execute minimal: %s", m)
		err = actions.RunMinimal(ctx, c.deps(), m)
	}

	c.recordHistory(strings.TrimSpace(input), err == nil)
	return err
}

// unknown builds the error for a line no route accepts. When the first word is
// a command the arguments are wrong, so the user is pointed at its help.
func (c *CLI) unknown(line string) error {
	word := firstWord(line)
	if _, ok := c.registry.Lookup(word); ok {
		return status.NotFound("Unknown command: %s\n\nSee 'help %s' for usage", line, word)
	}
	return status.UnknownCommand(line, c.suggest(word)...)
}

func firstWord(line string) string {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i]
	}
	return line
}

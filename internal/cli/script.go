package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexuslink/nlink/internal/parse"
	"github.com/nexuslink/nlink/internal/ui/style"
)

// lineError marks a failure of a script command, already reported.
type lineError struct {
	err error
}

func (e *lineError) Error() string { return e.err.Error() }
func (e *lineError) Unwrap() error { return e.err }

// ExecuteScript runs each command line of the file at path as it is read and
// stops at the first failure, which is also reported on the error stream.
func (c *CLI) ExecuteScript(ctx context.Context, path string) error {
	if err := c.ready(); err != nil {
		return err
	}
	c.app.Logger.Info("script %s: start", path)

	count := 0
	err := parse.EachLine(path, func(line parse.Line) error {
		if err := ctx.Err(); err != nil {
			return &lineError{err: err}
		}
		if err := c.Execute(ctx, line.Text); err != nil {
			fmt.Fprintln(c.errOut, style.Error(fmt.Sprintf("Error on line %d: %v", line.Number, err)))
			return &lineError{err: fmt.Errorf("line %d: %w", line.Number, err)}
		}
		count++
		return nil
	})

	var le *lineError
	if errors.As(err, &le) {
		return le.err
	}
	if err != nil {
		fmt.Fprintln(c.errOut, style.Error("Error: "+err.Error()))
		return err
	}
	c.app.Logger.Info("script %s: %d commands", path, count)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexuslink/nlink/internal/parse"
	"github.com/nexuslink/nlink/internal/status"
	"github.com/nexuslink/nlink/internal/ui/style"
)

// ParseAndExecute runs the command line argv, where argv[0] is the program
// name, and returns the process exit code.
func (c *CLI) ParseAndExecute(ctx context.Context, argv []string) int {
	if err := c.ready(); err != nil {
		return c.report(err)
	}

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	if len(args) == 0 {
		c.PrintHelp(c.out)
		return 0
	}

	c.app.Logger.Debug("argv: %s", parse.QuoteArgs(args))

	switch args[0] {
	case "-h", "--help":
		c.PrintHelp(c.out)
		return 0

	case "-v", "--version":
		fmt.Fprintf(c.out, "%s version %s\n", c.prog, c.version)
		return 0

	case "-m", "--minimal":
		if len(args) < 2 {
			return c.report(status.MissingOperand("minimal mode", "a command string"))
		}
		return c.report(c.ExecuteMinimal(ctx, strings.Join(args[1:], " ")))

	case "-i", "--interactive":
		return c.report(c.RunInteractive(ctx))

	case "-e", "--execute":
		if len(args) < 2 {
			return c.report(status.MissingOperand("script execution", "a script file"))
		}
		return status.ExitCode(c.ExecuteScript(ctx, args[1]))
	}

	if strings.HasPrefix(args[0], "-") {
		return c.report(status.InvalidParameter("unknown option: %s", args[0]))
	}

	if c.minimal && strings.ContainsAny(args[0], "@:") {
		return c.report(c.ExecuteMinimal(ctx, strings.Join(args, " ")))
	}
	return c.report(c.Execute(ctx, strings.Join(args, " ")))
}

// report prints err to the error stream and returns its exit code.
func (c *CLI) report(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(c.errOut, style.Error(err.Error()))
	return status.ExitCode(err)
}

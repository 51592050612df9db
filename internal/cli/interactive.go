package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nexuslink/nlink/internal/parse"
	"github.com/nexuslink/nlink/internal/repl"
	"github.com/nexuslink/nlink/internal/ui/style"
)

const (
	defaultPrompt = "nexus> "
	historyRecall = 500
)

var banner = []string{
	"*******************************************",
	"*         NexusLink CLI System           *",
	"*          © OBINexus Computing          *",
	"*******************************************",
}

// capturer is implemented by output writers that can be redirected while a
// command runs.
type capturer interface {
	Capture(dst io.Writer, fn func())
}

// RunInteractive reads commands until exit, quit or end of input. Failures
// are printed and the loop continues. With a terminal on both ends the
// Bubble Tea shell is used, otherwise a plain line loop.
func (c *CLI) RunInteractive(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}

	for _, line := range banner {
		fmt.Fprintln(c.out, style.Header(line))
	}
	fmt.Fprintln(c.out, "Type 'help' for available commands, 'exit' to quit")
	fmt.Fprintln(c.out)

	if c.isTerminal() {
		return repl.Run(ctx, repl.Config{
			Prompt:  c.prompt(),
			History: c.History(historyRecall),
			Exec:    c.captured(ctx),
			Styler:  c.app.Styler,
		}, c.in, c.out)
	}
	return c.runLines(ctx)
}

func (c *CLI) runLines(ctx context.Context) error {
	prompt := c.prompt()
	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 1024), 4*parse.MaxLength)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, style.Prompt(prompt))
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := c.Execute(ctx, line); err != nil {
			fmt.Fprintln(c.errOut, style.Error("Error: "+err.Error()))
		}
	}
}

// captured runs a line with the application output collected, so the shell
// can print it above the prompt.
func (c *CLI) captured(ctx context.Context) repl.Executor {
	return func(line string) (string, error) {
		var (
			buf bytes.Buffer
			err error
		)
		run := func() { err = c.Execute(ctx, line) }

		if w, ok := c.app.Output.(capturer); ok {
			w.Capture(&buf, run)
		} else {
			run()
		}
		return buf.String(), err
	}
}

func (c *CLI) prompt() string {
	if p, ok := c.app.Config.Get("prompt"); ok && p != "" {
		return p
	}
	return defaultPrompt
}

func (c *CLI) isTerminal() bool {
	in, ok := c.in.(*os.File)
	if !ok {
		return false
	}
	out, ok := c.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

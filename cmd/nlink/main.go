package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/nexuslink/nlink/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = cli.DefaultVersion

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	noColor, argv := extractNoColor(argv)

	// Enable styling if stdout is a terminal and --no-color is not set
	color := !noColor && isTerminal(stdout)

	prog := "nlink"
	c, err := cli.New(prog,
		cli.WithIO(stdin, stdout, stderr),
		cli.WithVersion(version),
		cli.WithColor(color),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = c.Close() }()

	return c.ParseAndExecute(ctx, argv)
}

// extractNoColor removes every --no-color flag from argv.
func extractNoColor(argv []string) (bool, []string) {
	found := false
	out := make([]string, 0, len(argv))
	for i, a := range argv {
		if i > 0 && a == "--no-color" {
			found = true
			continue
		}
		out = append(out, a)
	}
	return found, out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package cli

import (
	"fmt"
	"io"

	"github.com/nexuslink/nlink/internal/ui/style"
)

var globalOptions = []struct {
	flags       string
	description string
}{
	{"-h, --help", "Show this help"},
	{"-v, --version", "Show version"},
	{"-m, --minimal STRING", "Run a command in minimal syntax"},
	{"-i, --interactive", "Start the interactive shell"},
	{"-e, --execute FILE", "Run the commands in FILE"},
}

// PrintHelp writes the program usage, the global options and every
// registered command.
func (c *CLI) PrintHelp(w io.Writer) {
	if c.ready() != nil {
		return
	}

	fmt.Fprintf(w, "%s %s\n\n", style.Header("Usage:"), style.Info(fmt.Sprintf("%s [OPTIONS] COMMAND [ARGS...]", c.prog)))

	fmt.Fprintln(w, style.Header("Options:"))
	for _, opt := range globalOptions {
		fmt.Fprintf(w, "  %-22s %s\n", opt.flags, opt.description)
	}

	fmt.Fprintf(w, "\n%s\n", style.Header("Commands:"))
	for _, cmd := range c.registry.Commands() {
		fmt.Fprintf(w, "  %-15s %s\n", cmd.Name, cmd.Description)
	}

	if c.minimal {
		fmt.Fprintf(w, "\n%s\n", style.Header("Minimal syntax:"))
		fmt.Fprintln(w, "  component[@version][:function][=args]")
		fmt.Fprintln(w, style.Muted("  e.g. core, logger@1.2.3, logger@1.2.3:log, minimizer:optimize=level=3"))
	}

	fmt.Fprintf(w, "\nRun '%s help COMMAND' for details on a command.\n", c.prog)
}

package actions

import (
	"context"
	"fmt"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

var usageExamples = []string{
	"load core",
	"load minimizer version 1.2.3",
	"logger@1.2.3:log",
	"minimize core level 3 with boolean",
	"pipeline build create",
	"list commands",
}

func HelpCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "help",
		ShortName:   "h",
		Description: "Show help for commands",
		Help:        "Usage: help [COMMAND]\n\nWithout a command, lists every command. With one, shows its help.",
		Category:    "general",
		Handler:     helpHandler(d),
	}
}

func helpHandler(d Dependencies) router.Handler {
	return func(_ context.Context, p *params.Params) error {
		s := d.styler()

		if name, ok := p.Get("command"); ok {
			cmd, found := d.Registry.Lookup(name)
			if !found {
				return status.NotFound("no help for unknown command: %s", name)
			}
			fmt.Fprintf(d.Out, "%s - %s\n", s.Header(cmd.Name), cmd.Description)
			if cmd.Help != "" {
				fmt.Fprintf(d.Out, "\n%s\n", cmd.Help)
			}
			return nil
		}

		fmt.Fprintln(d.Out, s.Header("Available commands:"))
		for _, cmd := range d.Registry.Commands() {
			fmt.Fprintf(d.Out, "  %-15s %s\n", cmd.Name, cmd.Description)
		}
		fmt.Fprintf(d.Out, "\n%s\n", s.Header("Examples:"))
		for _, ex := range usageExamples {
			fmt.Fprintf(d.Out, "  %s\n", s.Muted(ex))
		}
		return nil
	}
}

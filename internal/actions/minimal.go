package actions

import (
	"context"
	"fmt"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/parse"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func MinimalCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "minimal",
		Description: "Run a command in minimal syntax",
		Help: "Usage: COMPONENT[@VERSION][:FUNCTION][=ARGS]\n\n" +
			"Examples:\n" +
			"  core\n" +
			"  logger@1.2.3\n" +
			"  logger@1.2.3:log\n" +
			"  minimizer:optimize=level=3",
		Category: "components",
		Handler:  minimalHandler(d),
	}
}

func minimalHandler(d Dependencies) router.Handler {
	return func(ctx context.Context, p *params.Params) error {
		// The routed form has no =args part; only the -m path sets Args.
		m := parse.Minimal{
			Component: p.Value("component", ""),
			Version:   p.Value("version", ""),
			Function:  p.Value("function", ""),
		}
		return RunMinimal(ctx, d, m)
	}
}

// RunMinimal loads m.Component and reports the parsed minimal fields.
func RunMinimal(ctx context.Context, d Dependencies, m parse.Minimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.Component == "" {
		return status.InvalidParameter("minimal command has no component")
	}

	line := fmt.Sprintf("Minimal command: component='%s'", m.Component)
	if m.Version != "" {
		line += fmt.Sprintf(", version='%s'", m.Version)
	}
	if m.Function != "" {
		line += fmt.Sprintf(", function='%s'", m.Function)
	}
	if m.Args != "" {
		line += fmt.Sprintf(", args='%s'", m.Args)
	}
	fmt.Fprintln(d.Out, line)

	c, err := d.loadComponent(m.Component, m.Version, m.Function)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.Out, d.styler().Success(fmt.Sprintf("Successfully loaded component '%s' (version %s)", c.Name, c.Version)))

	if m.Function != "" {
		call := fmt.Sprintf("Would call function '%s'", m.Function)
		if m.Args != "" {
			call += fmt.Sprintf(" with arguments '%s'", m.Args)
		}
		fmt.Fprintln(d.Out, call)
	}
	return nil
}

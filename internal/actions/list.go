package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func ListCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "list",
		ShortName:   "ls",
		Description: "List components or commands",
		Help: "Usage: list [CATEGORY]\n\n" +
			"Without a category, lists every component in the catalog with its latest version.\n" +
			"'list commands' lists the registered commands; any other category filters the catalog.",
		Category: "general",
		Handler:  listHandler(d),
	}
}

func listHandler(d Dependencies) router.Handler {
	return func(_ context.Context, p *params.Params) error {
		s := d.styler()
		category, _ := p.Get("category")

		if strings.EqualFold(category, "commands") {
			fmt.Fprintln(d.Out, s.Header("Commands:"))
			for _, cmd := range d.Registry.Commands() {
				fmt.Fprintf(d.Out, "  %-15s %-12s %s\n", cmd.Name, cmd.Category, cmd.Description)
			}
			return nil
		}

		components, err := d.Store.ListComponents(category)
		if err != nil {
			return status.IOError(err, "list components")
		}
		if len(components) == 0 {
			if category != "" {
				return status.NotFound("no components in category %s", category)
			}
			fmt.Fprintln(d.Out, "No components registered")
			return nil
		}

		title := "Components:"
		if category != "" {
			title = fmt.Sprintf("Components in %s:", category)
		}
		fmt.Fprintln(d.Out, s.Header(title))
		for _, c := range latestVersions(components) {
			fmt.Fprintf(d.Out, "  %-15s %-10s %s\n", c.Name, c.Version, s.Muted(c.Description))
		}
		return nil
	}
}

// latestVersions keeps the last entry of each name. components must be
// sorted by name, then version.
func latestVersions(components []domain.Component) []domain.Component {
	var out []domain.Component
	for _, c := range components {
		if n := len(out); n > 0 && out[n-1].Name == c.Name {
			out[n-1] = c
			continue
		}
		out = append(out, c)
	}
	return out
}

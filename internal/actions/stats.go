package actions

import (
	"context"
	"fmt"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func StatsCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "stats",
		Description: "Show session and catalog statistics",
		Help:        "Usage: stats",
		Category:    "general",
		Handler:     statsHandler(d),
	}
}

func statsHandler(d Dependencies) router.Handler {
	return func(_ context.Context, _ *params.Params) error {
		components, err := d.Store.ListComponents("")
		if err != nil {
			return status.IOError(err, "count components")
		}
		loads, distinct, err := d.Store.LoadStats()
		if err != nil {
			return status.IOError(err, "count loads")
		}
		history, err := d.Store.CountHistory()
		if err != nil {
			return status.IOError(err, "count history")
		}
		pipelines, err := d.Store.CountPipelines()
		if err != nil {
			return status.IOError(err, "count pipelines")
		}

		routes := 0
		if d.Routes != nil {
			routes = d.Routes()
		}

		rows := []struct {
			label string
			value any
		}{
			{"Session", d.SessionID},
			{"Components", len(components)},
			{"Load events", loads},
			{"Components loaded", distinct},
			{"History entries", history},
			{"Pipelines", pipelines},
			{"Commands", len(d.Registry.Commands())},
			{"Routes", routes},
		}

		fmt.Fprintln(d.Out, d.styler().Header("Statistics:"))
		for _, r := range rows {
			fmt.Fprintf(d.Out, "  %-19s %v\n", r.label+":", r.value)
		}
		return nil
	}
}

package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func LoadCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "load",
		Description: "Load a component",
		Help: "Usage: load COMPONENT [version VERSION [function FUNCTION]]\n\n" +
			"Without a version the highest registered version is loaded.",
		Category: "components",
		Handler:  loadHandler(d),
	}
}

func loadHandler(d Dependencies) router.Handler {
	return func(_ context.Context, p *params.Params) error {
		name, ok := p.Get("component")
		if !ok || name == "" {
			return status.InvalidParameter("load requires a component")
		}
		version, _ := p.Get("version")
		function, _ := p.Get("function")

		s := d.styler()
		if version != "" {
			fmt.Fprintf(d.Out, "Loading component '%s' version '%s'...\n", name, version)
		} else {
			fmt.Fprintf(d.Out, "Loading component '%s'...\n", name)
		}

		c, err := d.loadComponent(name, version, function)
		if err != nil {
			return err
		}

		fmt.Fprintln(d.Out, s.Success(fmt.Sprintf("Successfully loaded component '%s' (version %s)", c.Name, c.Version)))
		if function != "" {
			fmt.Fprintf(d.Out, "Resolved function '%s'\n", function)
		}
		return nil
	}
}

// loadComponent resolves a component in the catalog and records the load
// against the current session.
func (d Dependencies) loadComponent(name, version, function string) (domain.Component, error) {
	c, err := d.Store.FindComponent(name, version)
	if err != nil {
		return domain.Component{}, storeError(err, "find component %s", name)
	}

	err = d.Store.RecordLoad(domain.LoadEvent{
		SessionID: d.SessionID,
		Component: c.Name,
		Version:   c.Version,
		Function:  function,
	})
	if err != nil {
		return domain.Component{}, storeError(err, "record load of %s", c.Name)
	}

	d.logger().Info("loaded component %s@%s", c.Name, c.Version)
	return c, nil
}

// storeError passes status errors through and wraps anything else as an I/O
// failure.
func storeError(err error, format string, args ...any) error {
	var se *status.Error
	if errors.As(err, &se) {
		return err
	}
	return status.IOError(err, format, args...)
}

package router

import (
	"context"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/status"
)

// Handler runs a matched command. p holds the parameters bound from the
// match and is never nil.
type Handler func(ctx context.Context, p *params.Params) error

// Plain adapts a handler that takes no parameters.
func Plain(fn func(ctx context.Context) error) Handler {
	return func(ctx context.Context, _ *params.Params) error {
		return fn(ctx)
	}
}

// Argv adapts a handler that takes positional arguments and returns an exit
// status. The arguments are the set parameter values in order; a non-zero
// status is reported as a Failure.
func Argv(fn func(ctx context.Context, args []string) int) Handler {
	return func(ctx context.Context, p *params.Params) error {
		if code := fn(ctx, p.Values()); code != 0 {
			return status.Failure("command exited with status %d", code)
		}
		return nil
	}
}

// Command is the record a route dispatches to. It is copied into every route
// that names it.
type Command struct {
	Name        string
	ShortName   string
	Description string
	Help        string
	Category    string
	Handler     Handler

	// Data is opaque to the router.
	Data any
}

// Run invokes the handler. A command without one succeeds.
func (c Command) Run(ctx context.Context, p *params.Params) error {
	if c.Handler == nil {
		return nil
	}
	if p == nil {
		p = params.New()
	}
	return c.Handler(ctx, p)
}

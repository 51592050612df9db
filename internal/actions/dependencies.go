// Package actions implements the built-in nlink commands.
//
// Every command is built from a Dependencies value and returns a
// router.Handler, so tests can drive a command with an in-memory store and a
// buffer for output.
package actions

import (
	"io"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/log"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/ui/style"
)

// Registry exposes the registered commands to help, list and stats.
type Registry interface {
	Commands() []router.Command
	Lookup(name string) (router.Command, bool)
}

type Dependencies struct {
	Out       io.Writer
	Styler    domain.Styler
	Store     domain.Store
	Config    domain.ConfigProvider
	Logger    domain.Logger
	SessionID string
	Program   string
	Version   string

	Registry Registry
	Routes   func() int
}

// NewDependencies builds Dependencies from an application.
func NewDependencies(app *domain.Application, program, version string, registry Registry, routes func() int) Dependencies {
	return Dependencies{
		Out:       app.Output,
		Styler:    app.Styler,
		Store:     app.Store,
		Config:    app.Config,
		Logger:    app.Logger,
		SessionID: app.SessionID,
		Program:   program,
		Version:   version,
		Registry:  registry,
		Routes:    routes,
	}
}

func (d Dependencies) styler() domain.Styler {
	if d.Styler == nil {
		return style.NopStyler{}
	}
	return d.Styler
}

func (d Dependencies) logger() domain.Logger {
	if d.Logger == nil {
		return log.NopLogger{}
	}
	return d.Logger
}

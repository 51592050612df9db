// Package cli is the nlink front-end: it owns the router and the command
// registry, binds the built-in commands to their patterns, and drives them
// from argv, an interactive shell or a script file.
package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"github.com/nexuslink/nlink/internal/actions"
	"github.com/nexuslink/nlink/internal/app"
	"github.com/nexuslink/nlink/internal/config"
	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

// DefaultVersion is reported when no version is configured.
const DefaultVersion = "1.0.0"

// MinimalEnv enables minimal mode when set to a true value.
const MinimalEnv = "NEXUS_MINIMAL"

type CLI struct {
	prog    string
	version string

	app     *domain.Application
	ownsApp bool
	color   bool

	router   *router.Router
	registry *Registry

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	minimal       bool
	history       bool
	historyIgnore []glob.Glob
}

// Option configures a CLI.
type Option func(*CLI)

// WithApplication uses app instead of creating one. The caller keeps
// ownership and must close it.
func WithApplication(a *domain.Application) Option {
	return func(c *CLI) {
		c.app = a
	}
}

// WithIO sets the streams used for input, regular output and errors.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(c *CLI) {
		if in != nil {
			c.in = in
		}
		if out != nil {
			c.out = out
		}
		if errOut != nil {
			c.errOut = errOut
		}
	}
}

func WithVersion(v string) Option {
	return func(c *CLI) {
		if v != "" {
			c.version = v
		}
	}
}

// WithColor enables styled output for an application the CLI creates.
func WithColor(enabled bool) Option {
	return func(c *CLI) {
		c.color = enabled
	}
}

// New builds a CLI with the built-in commands registered.
func New(progName string, opts ...Option) (*CLI, error) {
	if progName == "" {
		progName = "nlink"
	}
	c := &CLI{
		prog:    progName,
		version: DefaultVersion,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.app == nil {
		appOpts := app.DefaultOptions()
		appOpts.Output = c.out
		appOpts.StyleEnabled = c.color
		a, err := app.New(appOpts)
		if err != nil {
			return nil, status.IOError(err, "initialize application")
		}
		c.app = a
		c.ownsApp = true
	}

	c.router = router.New(router.WithLogger(c.app.Logger))
	c.registry = NewRegistry()
	c.loadSettings()

	if err := c.registerBuiltins(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *CLI) loadSettings() {
	cfg := c.app.Config

	c.minimal = config.Bool(cfg, "minimal_mode")
	if v, ok := os.LookupEnv(MinimalEnv); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.minimal = b
		} else {
			c.minimal = v != ""
		}
	}

	c.history = config.Bool(cfg, "history")
	c.historyIgnore = nil
	for _, expr := range config.List(cfg, "history_ignore") {
		g, err := glob.Compile(expr)
		if err != nil {
			c.app.Logger.Warn("history_ignore: invalid pattern %q: %v", expr, err)
			continue
		}
		c.historyIgnore = append(c.historyIgnore, g)
	}
}

func (c *CLI) deps() actions.Dependencies {
	return actions.NewDependencies(c.app, c.prog, c.version, c.registry, c.router.Len)
}

func (c *CLI) ready() error {
	if c == nil || c.router == nil || c.registry == nil || c.app == nil {
		return status.NotInitialized("cli")
	}
	return nil
}

// Router exposes the underlying router, for registering extra routes.
func (c *CLI) Router() *router.Router {
	if c == nil {
		return nil
	}
	return c.router
}

// Registry exposes the command registry.
func (c *CLI) Registry() *Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Application returns the application the CLI runs against.
func (c *CLI) Application() *domain.Application {
	if c == nil {
		return nil
	}
	return c.app
}

func (c *CLI) SetMinimalMode(enabled bool) {
	if c != nil {
		c.minimal = enabled
	}
}

func (c *CLI) MinimalMode() bool {
	return c != nil && c.minimal
}

// Close drops the router and registry and closes the application when the
// CLI created it. Closing twice is a no-op.
func (c *CLI) Close() error {
	if c == nil {
		return nil
	}
	c.router = nil
	c.registry = nil

	var err error
	if c.ownsApp {
		err = app.Close(c.app)
	}
	c.app = nil
	c.ownsApp = false
	return err
}

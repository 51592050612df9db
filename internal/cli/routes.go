package cli

import (
	"github.com/nexuslink/nlink/internal/actions"
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/pattern"
	"github.com/nexuslink/nlink/internal/router"
)

// MinimalPriority ranks the minimal catch-all below every named command.
const MinimalPriority = -10

type binding struct {
	pattern string
	names   []string
	opts    []router.RouteOption
}

func (c *CLI) registerBuiltins() error {
	d := c.deps()

	builtins := []struct {
		cmd      router.Command
		bindings []binding
	}{
		{actions.HelpCommand(d), []binding{
			{pattern: `^help$`},
			{pattern: `^help ([A-Za-z0-9_.-]+)$`, names: []string{"command"}},
		}},
		{actions.ListCommand(d), []binding{
			{pattern: `^list$`},
			{pattern: `^list ([A-Za-z0-9_.-]+)$`, names: []string{"category"}},
		}},
		{actions.StatsCommand(d), []binding{
			{pattern: `^stats$`},
		}},
		{actions.VersionCommand(d), []binding{
			{pattern: `^version$`},
			{pattern: `^version (detailed|json)$`, names: []string{"format"}},
		}},
		{actions.LoadCommand(d), []binding{
			{pattern: `^load ([A-Za-z0-9_.-]+)$`, names: []string{"component"}},
			{pattern: `^load ([A-Za-z0-9_.-]+) version ([A-Za-z0-9_.-]+)$`, names: []string{"component", "version"}},
			{pattern: `^load ([A-Za-z0-9_.-]+) version ([A-Za-z0-9_.-]+) function ([A-Za-z0-9_.-]+)$`, names: []string{"component", "version", "function"}},
		}},
		{actions.MinimalCommand(d), []binding{
			{
				pattern: `^([A-Za-z0-9_-]+)(@([0-9.]+))?(:([A-Za-z0-9_-]+))?$`,
				names:   []string{"component", "", "version", "", "function"},
				opts:    []router.RouteOption{router.WithPriority(MinimalPriority), router.WithGuard(c.minimalGuard)},
			},
		}},
		{actions.MinimizeCommand(d), []binding{
			{
				pattern: `^minimize ([A-Za-z0-9_./-]+)( level ([0-9]))?( (with|without) boolean)?( output ([A-Za-z0-9_./-]+))?$`,
				names:   []string{"component", "", "level", "", "boolean_option", "", "output"},
			},
		}},
		{actions.ConfigCommand(d), []binding{
			{pattern: `^config$`},
			{pattern: `^config (get|unset) ([a-z_]+)$`, names: []string{"subcommand", "key"}},
			{pattern: `^config (set) ([a-z_]+) (.+)$`, names: []string{"subcommand", "key", "value"}},
		}},
		{actions.PipelineCommand(d), []binding{
			{
				pattern: `^pipeline ([A-Za-z0-9_./-]+)( ([A-Za-z0-9_.-]+)( ([A-Za-z0-9_./-]+))?)?$`,
				names:   []string{"component", "", "subcommand", "", "argument"},
			},
		}},
	}

	for _, b := range builtins {
		if err := c.registry.Add(b.cmd); err != nil {
			return err
		}
		for _, bind := range b.bindings {
			err := c.router.RegisterWithParams(bind.pattern, b.cmd, pattern.FlagRegex, bind.names, bind.opts...)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// minimalGuard accepts a bare word only when it names a catalog component, so
// unknown words fall through to "Unknown command".
func (c *CLI) minimalGuard(p *params.Params) bool {
	if _, ok := p.Get("version"); ok {
		return true
	}
	if _, ok := p.Get("function"); ok {
		return true
	}
	name, ok := p.Get("component")
	if !ok || c.app == nil || c.app.Store == nil {
		return false
	}
	found, err := c.app.Store.HasComponent(name)
	if err != nil {
		c.app.Logger.Warn("minimal route: lookup %s: %v", name, err)
		return false
	}
	return found
}

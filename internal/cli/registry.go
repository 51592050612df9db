package cli

import (
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

// Registry keeps commands in registration order, addressable by name or
// short name.
type Registry struct {
	commands []router.Command
	index    map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers cmd. Names and short names must be unique.
func (r *Registry) Add(cmd router.Command) error {
	if r == nil {
		return status.NotInitialized("registry")
	}
	if cmd.Name == "" {
		return status.InvalidParameter("command name is empty")
	}
	if _, ok := r.index[cmd.Name]; ok {
		return status.InvalidParameter("command %s already registered", cmd.Name)
	}
	if cmd.ShortName != "" {
		if _, ok := r.index[cmd.ShortName]; ok {
			return status.InvalidParameter("short name %s of %s already registered", cmd.ShortName, cmd.Name)
		}
	}

	r.commands = append(r.commands, cmd)
	r.index[cmd.Name] = len(r.commands) - 1
	if cmd.ShortName != "" {
		r.index[cmd.ShortName] = len(r.commands) - 1
	}
	return nil
}

// Lookup finds a command by name or short name.
func (r *Registry) Lookup(name string) (router.Command, bool) {
	if r == nil {
		return router.Command{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return router.Command{}, false
	}
	return r.commands[i], true
}

// Commands returns the commands in registration order.
func (r *Registry) Commands() []router.Command {
	if r == nil {
		return nil
	}
	return append([]router.Command(nil), r.commands...)
}

// Names returns the command names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		names[i] = cmd.Name
	}
	return names
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

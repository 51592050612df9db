// Package router dispatches command input to the first registered pattern
// that matches it.
//
// Routes are visited by descending priority and, within a priority, most
// recently registered first. Capture groups of a regex route are bound to the
// route's parameter names before the command runs.
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/log"
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/pattern"
	"github.com/nexuslink/nlink/internal/status"
)

type route struct {
	matcher  *pattern.Matcher
	cmd      Command
	names    []string
	priority int
	guard    func(*params.Params) bool
}

// RouteInfo describes a registered route.
type RouteInfo struct {
	Pattern  string
	Flags    pattern.Flags
	Command  string
	Names    []string
	Priority int
}

// Router holds routes in traversal order. It is not safe for concurrent
// registration and dispatch.
type Router struct {
	routes []*route
	logger domain.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger for registration and dispatch messages.
func WithLogger(l domain.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Router {
	r := &Router{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RouteOption configures a single route.
type RouteOption func(*route)

// WithPriority places the route ahead of every route with a lower priority.
// The default is 0.
func WithPriority(n int) RouteOption {
	return func(rt *route) {
		rt.priority = n
	}
}

// WithGuard makes the route match only when fn accepts the bound parameters.
func WithGuard(fn func(*params.Params) bool) RouteOption {
	return func(rt *route) {
		rt.guard = fn
	}
}

// Register binds a pattern to cmd with no parameter names. Capture groups
// are still bound, as param1, param2, ...
func (r *Router) Register(text string, cmd Command, flags pattern.Flags, opts ...RouteOption) error {
	return r.RegisterWithParams(text, cmd, flags, nil, opts...)
}

// RegisterWithParams binds a pattern to cmd. names[i] names capture group
// i+1; an empty name discards that group.
func (r *Router) RegisterWithParams(text string, cmd Command, flags pattern.Flags, names []string, opts ...RouteOption) error {
	if r == nil {
		return status.NotInitialized("router")
	}
	if cmd.Name == "" {
		return status.InvalidParameter("command name is empty")
	}

	m, err := pattern.Compile(text, flags)
	if err != nil {
		r.logger.Error("router: cannot register %q for %s: %v", text, cmd.Name, err)
		return err
	}

	rt := &route{
		matcher: m,
		cmd:     cmd,
		names:   append([]string(nil), names...),
	}
	for _, opt := range opts {
		opt(rt)
	}

	for _, existing := range r.routes {
		if existing.matcher.Pattern() == m.Pattern() && existing.matcher.Flags() == m.Flags() {
			r.logger.Warn("router: pattern %q registered again for %s, shadowing %s",
				text, cmd.Name, existing.cmd.Name)
			break
		}
	}

	r.insert(rt)
	r.logger.Debug("router: registered %q -> %s (priority %d)", text, cmd.Name, rt.priority)
	return nil
}

// insert places rt ahead of every route whose priority is not higher.
func (r *Router) insert(rt *route) {
	i := 0
	for i < len(r.routes) && r.routes[i].priority > rt.priority {
		i++
	}
	r.routes = append(r.routes, nil)
	copy(r.routes[i+1:], r.routes[i:])
	r.routes[i] = rt
}

// Execute dispatches input and returns the handler's error.
func (r *Router) Execute(ctx context.Context, input string) error {
	_, err := r.ExecuteWithParams(ctx, input)
	return err
}

// ExecuteWithParams dispatches input and also returns the bound parameters.
// When no route matches the error is NotFound and the parameters are nil.
func (r *Router) ExecuteWithParams(ctx context.Context, input string) (*params.Params, error) {
	if r == nil {
		return nil, status.NotInitialized("router")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rt, p, err := r.match(input)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		r.logger.Debug("router: no route for %q", input)
		return nil, status.NotFound("no command matches %q", input)
	}

	r.logger.Debug("router: %q matched %q -> %s", input, rt.matcher.Pattern(), rt.cmd.Name)
	return p, rt.cmd.Run(ctx, p)
}

// Match returns the command input would dispatch to without running it.
func (r *Router) Match(input string) (Command, *params.Params, bool) {
	if r == nil {
		return Command{}, nil, false
	}
	rt, p, err := r.match(input)
	if err != nil || rt == nil {
		return Command{}, nil, false
	}
	return rt.cmd, p, true
}

func (r *Router) match(input string) (*route, *params.Params, error) {
	for _, rt := range r.routes {
		info, ok := rt.matcher.MatchWithParams(input)
		if !ok {
			continue
		}

		p, err := bind(rt, info)
		if err != nil {
			return nil, nil, err
		}
		if rt.guard != nil && !rt.guard(p) {
			continue
		}
		return rt, p, nil
	}
	return nil, nil, nil
}

func bind(rt *route, info *pattern.MatchInfo) (*params.Params, error) {
	p := params.New()
	if !rt.matcher.IsRegex() {
		return p, nil
	}

	for i := 1; i < info.GroupCount(); i++ {
		var name string
		switch {
		case i-1 < len(rt.names):
			name = rt.names[i-1]
			if name == "" {
				continue
			}
		default:
			name = fmt.Sprintf("param%d", i)
		}

		text, matched := info.Group(i)
		var err error
		if matched {
			err = p.Add(name, text)
		} else {
			err = p.AddAbsent(name)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Find returns registered commands whose names match query, case-insensitive,
// in traversal order and without repeats. A query containing * or ? is a
// glob, anything else a regular expression. At most max commands are
// returned; max <= 0 returns nothing.
func (r *Router) Find(query string, max int) []Command {
	if r == nil || max <= 0 {
		return nil
	}

	flags := pattern.FlagRegex | pattern.FlagCaseInsensitive
	if strings.ContainsAny(query, "*?") {
		flags = pattern.FlagGlob | pattern.FlagCaseInsensitive
	}
	m, err := pattern.Compile(query, flags)
	if err != nil {
		r.logger.Warn("router: find %q: %v", query, err)
		return nil
	}

	seen := make(map[string]bool)
	var out []Command
	for _, rt := range r.routes {
		if len(out) >= max {
			break
		}
		if seen[rt.cmd.Name] || !m.Match(rt.cmd.Name) {
			continue
		}
		seen[rt.cmd.Name] = true
		out = append(out, rt.cmd)
	}
	return out
}

// Routes describes the registered routes in traversal order.
func (r *Router) Routes() []RouteInfo {
	if r == nil {
		return nil
	}
	out := make([]RouteInfo, len(r.routes))
	for i, rt := range r.routes {
		out[i] = RouteInfo{
			Pattern:  rt.matcher.Pattern(),
			Flags:    rt.matcher.Flags(),
			Command:  rt.cmd.Name,
			Names:    append([]string(nil), rt.names...),
			Priority: rt.priority,
		}
	}
	return out
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	if r == nil {
		return 0
	}
	return len(r.routes)
}

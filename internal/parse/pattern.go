package parse

import (
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/pattern"
	"github.com/nexuslink/nlink/internal/status"
)

// ParseWithPattern matches input against a regular expression and binds its
// capture groups to names. Group i is bound to names[i-1]; an empty name
// drops the group, as does a group beyond the end of names. Groups that did
// not take part in the match are skipped.
//
// An empty expr falls back to Parse with an empty parameter map.
func ParseWithPattern(input, expr string, names []string, opts Options) (*Result, error) {
	if expr == "" {
		res, err := Parse(input, opts)
		if err != nil {
			return nil, err
		}
		res.Params = params.New()
		return res, nil
	}

	flags := pattern.FlagRegex
	if !opts.CaseSensitive {
		flags |= pattern.FlagCaseInsensitive
	}
	m, err := pattern.Compile(expr, flags)
	if err != nil {
		return nil, err
	}

	info, ok := m.MatchWithParams(input)
	if !ok {
		return nil, status.InvalidParameter("input does not match pattern: %s", expr)
	}

	p := params.New()
	for i := 1; i < info.GroupCount(); i++ {
		if i-1 >= len(names) || names[i-1] == "" {
			continue
		}
		text, matched := info.Group(i)
		if !matched {
			continue
		}
		if err := p.Add(names[i-1], text); err != nil {
			return nil, err
		}
	}

	command, _ := info.Group(0)
	return &Result{
		Command: command,
		Args:    ParamsToArgs(p),
		Params:  p,
	}, nil
}

// ParamsToArgs renders p as --name value pairs. Absent values emit only the
// flag.
func ParamsToArgs(p *params.Params) []string {
	args := make([]string, 0, 2*p.Len())
	for _, e := range p.Entries() {
		args = append(args, "--"+e.Name)
		if e.Set {
			args = append(args, e.Value)
		}
	}
	return args
}

// Package params holds the named values bound from a pattern match.
package params

import "github.com/nexuslink/nlink/internal/status"

// Entry is one named parameter. Set is false for a capture group that did not
// take part in the match.
type Entry struct {
	Name  string
	Value string
	Set   bool
}

// Params is an ordered name to value map. Duplicate names are kept; lookups
// return the first one. A nil *Params reads as empty.
type Params struct {
	entries []Entry
}

func New() *Params {
	return &Params{}
}

// Add appends a parameter with a value.
func (p *Params) Add(name, value string) error {
	return p.add(Entry{Name: name, Value: value, Set: true})
}

// AddAbsent appends a parameter that has a name but no value.
func (p *Params) AddAbsent(name string) error {
	return p.add(Entry{Name: name})
}

func (p *Params) add(e Entry) error {
	if p == nil {
		return status.NotInitialized("parameter map")
	}
	if e.Name == "" {
		return status.InvalidParameter("parameter name is empty")
	}
	p.entries = append(p.entries, e)
	return nil
}

// Get returns the value of the first parameter called name. The boolean is
// false when the name is missing or its value is absent.
func (p *Params) Get(name string) (string, bool) {
	e, ok := p.lookup(name)
	if !ok || !e.Set {
		return "", false
	}
	return e.Value, true
}

// Value returns the value of name, or def when it has none.
func (p *Params) Value(name, def string) string {
	if v, ok := p.Get(name); ok {
		return v
	}
	return def
}

// Has reports whether a parameter called name exists, set or not.
func (p *Params) Has(name string) bool {
	_, ok := p.lookup(name)
	return ok
}

func (p *Params) lookup(name string) (Entry, bool) {
	if p == nil {
		return Entry{}, false
	}
	for _, e := range p.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// At returns the i-th entry in insertion order.
func (p *Params) At(i int) (Entry, bool) {
	if p == nil || i < 0 || i >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Entries returns a copy of all entries in insertion order.
func (p *Params) Entries() []Entry {
	if p == nil {
		return nil
	}
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Params) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Values returns the set values in insertion order, skipping absent ones.
func (p *Params) Values() []string {
	if p == nil {
		return nil
	}
	var values []string
	for _, e := range p.entries {
		if e.Set {
			values = append(values, e.Value)
		}
	}
	return values
}

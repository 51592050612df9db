package pattern

import "strings"

// Flags select how a pattern string is interpreted.
type Flags uint8

const (
	FlagCaseInsensitive Flags = 1 << iota
	FlagGlob
	FlagRegex
	FlagExtended
	FlagLiteral
)

const knownFlags = FlagCaseInsensitive | FlagGlob | FlagRegex | FlagExtended | FlagLiteral

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	names := []struct {
		flag Flags
		name string
	}{
		{FlagCaseInsensitive, "case-insensitive"},
		{FlagGlob, "glob"},
		{FlagRegex, "regex"},
		{FlagExtended, "extended"},
		{FlagLiteral, "literal"},
	}
	for _, n := range names {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Category is the interpretation a pattern resolved to.
type Category int

const (
	CategoryLiteral Category = iota
	CategoryGlob
	CategoryRegex
)

func (c Category) String() string {
	switch c {
	case CategoryGlob:
		return "glob"
	case CategoryRegex:
		return "regex"
	default:
		return "literal"
	}
}

func (c Category) flag() Flags {
	switch c {
	case CategoryGlob:
		return FlagGlob
	case CategoryRegex:
		return FlagRegex
	default:
		return FlagLiteral
	}
}

// Detect resolves the category of text under flags.
// Explicit flags win in the order literal, regex/extended, glob; otherwise the
// text is inspected: regex metacharacters first, then glob wildcards.
func Detect(text string, flags Flags) Category {
	switch {
	case flags.Has(FlagLiteral):
		return CategoryLiteral
	case flags.Has(FlagRegex), flags.Has(FlagExtended):
		return CategoryRegex
	case flags.Has(FlagGlob):
		return CategoryGlob
	case strings.ContainsAny(text, "^$(|+."):
		return CategoryRegex
	case strings.ContainsAny(text, "*?["):
		return CategoryGlob
	default:
		return CategoryLiteral
	}
}

// Package pattern compiles command patterns and matches input against them.
//
// A pattern is interpreted as a literal string, a glob, or a regular
// expression. The interpretation is chosen by flags or detected from the
// pattern text (see Detect). Compilation is eager: a Matcher that exists is
// ready to match.
//
// Regular expressions use Go's RE2 syntax with leftmost-longest matching, the
// closest equivalent to POSIX extended expressions. They are matched as
// written, so anchoring with ^ and $ is up to the caller.
package pattern

import (
	"regexp"

	"github.com/nexuslink/nlink/internal/status"
)

// Matcher is a compiled pattern. It is immutable and safe to share.
type Matcher struct {
	text     string
	flags    Flags
	category Category
	re       *regexp.Regexp
}

// Compile validates text under flags and returns a ready matcher.
// Unknown flag bits are ignored. An empty text is a literal that matches only
// the empty string.
func Compile(text string, flags Flags) (*Matcher, error) {
	flags &= knownFlags
	category := Detect(text, flags)

	m := &Matcher{
		text:     text,
		flags:    flags | category.flag(),
		category: category,
	}

	if category == CategoryRegex {
		expr := text
		if flags.Has(FlagCaseInsensitive) {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, status.InvalidPattern(text, err)
		}
		re.Longest()
		m.re = re
	}

	return m, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It is intended for static pattern tables.
func MustCompile(text string, flags Flags) *Matcher {
	m, err := Compile(text, flags)
	if err != nil {
		panic("pattern: Compile(" + text + "): " + err.Error())
	}
	return m
}

// Pattern returns the original pattern text.
func (m *Matcher) Pattern() string {
	return m.text
}

// Flags returns the flags the matcher was compiled with, restricted to known
// bits and including the bit of the resolved category.
func (m *Matcher) Flags() Flags {
	return m.flags
}

// Category returns the resolved interpretation.
func (m *Matcher) Category() Category {
	return m.category
}

func (m *Matcher) IsRegex() bool   { return m.category == CategoryRegex }
func (m *Matcher) IsGlob() bool    { return m.category == CategoryGlob }
func (m *Matcher) IsLiteral() bool { return m.category == CategoryLiteral }

// GroupCount returns the number of groups a regex match reports, including
// group 0. Literal and glob patterns have no groups.
func (m *Matcher) GroupCount() int {
	if m.re == nil {
		return 0
	}
	return m.re.NumSubexp() + 1
}

func (m *Matcher) foldCase() bool {
	return m.flags.Has(FlagCaseInsensitive)
}

// Match reports whether s matches the pattern.
func (m *Matcher) Match(s string) bool {
	if m == nil {
		return false
	}
	switch m.category {
	case CategoryRegex:
		return m.re.MatchString(s)
	case CategoryGlob:
		return globMatch(m.text, s, m.foldCase())
	default:
		return literalMatch(m.text, s, m.foldCase())
	}
}

// MatchWithParams matches s and describes the match.
// For regex patterns the result has exactly GroupCount groups; groups that
// did not participate are marked absent. Literal and glob matches carry only
// group 0, the whole input. On failure the result is nil.
func (m *Matcher) MatchWithParams(s string) (*MatchInfo, bool) {
	if m == nil {
		return nil, false
	}

	if m.category != CategoryRegex {
		if !m.Match(s) {
			return nil, false
		}
		return &MatchInfo{Groups: []Group{{Start: 0, End: len(s), Text: s, Matched: true}}}, true
	}

	loc := m.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, false
	}

	groups := make([]Group, m.GroupCount())
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			groups[i] = Group{Start: -1, End: -1}
			continue
		}
		groups[i] = Group{Start: start, End: end, Text: s[start:end], Matched: true}
	}

	return &MatchInfo{Groups: groups}, true
}

func literalMatch(pattern, s string, fold bool) bool {
	if len(pattern) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !equalByte(pattern[i], s[i], fold) {
			return false
		}
	}
	return true
}

func equalByte(a, b byte, fold bool) bool {
	if a == b {
		return true
	}
	return fold && toLower(a) == toLower(b)
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

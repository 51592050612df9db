package pattern

import (
	"strings"
	"testing"

	"github.com/nexuslink/nlink/internal/status"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		flags Flags
		want  Category
	}{
		{"plain word is literal", "version", 0, CategoryLiteral},
		{"empty is literal", "", 0, CategoryLiteral},
		{"anchor is regex", "^help$", 0, CategoryRegex},
		{"group is regex", "(a)", 0, CategoryRegex},
		{"alternation is regex", "a|b", 0, CategoryRegex},
		{"plus is regex", "a+", 0, CategoryRegex},
		{"dot is regex", "a.b", 0, CategoryRegex},
		{"star is glob", "lo*", 0, CategoryGlob},
		{"question is glob", "l?ad", 0, CategoryGlob},
		{"class is glob", "[lm]oad", 0, CategoryGlob},
		{"regex wins over glob chars", "^lo*", 0, CategoryRegex},
		{"literal flag wins", "^a*$", FlagLiteral | FlagRegex, CategoryLiteral},
		{"regex flag", "abc", FlagRegex, CategoryRegex},
		{"extended flag", "abc", FlagExtended, CategoryRegex},
		{"glob flag", "a.b", FlagGlob, CategoryGlob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.text, tt.flags))
		})
	}
}

func TestCompile_AccessorsRoundTrip(t *testing.T) {
	tests := []struct {
		text  string
		flags Flags
		want  Flags
	}{
		{"version", 0, FlagLiteral},
		{"lo*", FlagCaseInsensitive, FlagCaseInsensitive | FlagGlob},
		{"^load (.+)$", FlagRegex, FlagRegex},
		{"x", FlagExtended, FlagExtended | FlagRegex},
		{"x", Flags(0x80) | FlagLiteral, FlagLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := Compile(tt.text, tt.flags)
			require.NoError(t, err)
			require.Equal(t, tt.text, m.Pattern())
			require.Equal(t, tt.want, m.Flags())
		})
	}
}

func TestCompile_InvalidRegex(t *testing.T) {
	m, err := Compile("^load (", FlagRegex)
	require.Nil(t, m)
	require.Error(t, err)
	require.ErrorIs(t, err, status.ErrInvalidPattern)
}

func TestMustCompile_Panics(t *testing.T) {
	require.Panics(t, func() { MustCompile("(", FlagRegex) })
	require.NotPanics(t, func() { MustCompile("^ok$", FlagRegex) })
}

func TestLiteralMatch(t *testing.T) {
	m, err := Compile("Version", 0)
	require.NoError(t, err)
	require.True(t, m.IsLiteral())
	require.True(t, m.Match("Version"))
	require.False(t, m.Match("version"))
	require.False(t, m.Match("Version "))

	ci, err := Compile("Version", FlagCaseInsensitive)
	require.NoError(t, err)
	require.True(t, ci.Match("vERSION"))
	require.False(t, ci.Match("versio"))
}

func TestLiteralMatch_FoldsASCIIOnly(t *testing.T) {
	m, err := Compile("ÄB", FlagCaseInsensitive|FlagLiteral)
	require.NoError(t, err)
	require.True(t, m.Match("Äb"))
	require.False(t, m.Match("äb"))
}

func TestEmptyPattern(t *testing.T) {
	m, err := Compile("", 0)
	require.NoError(t, err)
	require.True(t, m.IsLiteral())
	require.True(t, m.Match(""))
	require.False(t, m.Match("x"))

	g, err := Compile("", FlagGlob)
	require.NoError(t, err)
	require.True(t, g.Match(""))
	require.False(t, g.Match("x"))

	r, err := Compile("", FlagRegex)
	require.NoError(t, err)
	require.True(t, r.Match(""))
}

func TestRegexMatch_CaseInsensitive(t *testing.T) {
	m, err := Compile("^help$", FlagRegex|FlagCaseInsensitive)
	require.NoError(t, err)
	require.True(t, m.Match("HELP"))

	cs, err := Compile("^help$", FlagRegex)
	require.NoError(t, err)
	require.False(t, cs.Match("HELP"))
}

func TestGroupCount(t *testing.T) {
	lit := MustCompile("load", 0)
	require.Equal(t, 0, lit.GroupCount())

	glob := MustCompile("lo*", 0)
	require.Equal(t, 0, glob.GroupCount())

	re := MustCompile("^load ([a-z]+)( version ([0-9.]+))?$", FlagRegex)
	require.Equal(t, 4, re.GroupCount())
}

func TestMatchWithParams_Regex(t *testing.T) {
	m := MustCompile("^load ([a-z]+)( version ([0-9.]+))?$", FlagRegex)

	info, ok := m.MatchWithParams("load core version 1.2")
	require.True(t, ok)
	require.Equal(t, m.GroupCount(), info.GroupCount())

	full, matched := info.Group(0)
	require.True(t, matched)
	require.Equal(t, "load core version 1.2", full)

	comp, _ := info.Group(1)
	require.Equal(t, "core", comp)
	require.Equal(t, 5, info.Groups[1].Start)
	require.Equal(t, 9, info.Groups[1].End)

	ver, _ := info.Group(3)
	require.Equal(t, "1.2", ver)
}

func TestMatchWithParams_AbsentGroup(t *testing.T) {
	m := MustCompile("^load ([a-z]+)( version ([0-9.]+))?$", FlagRegex)

	info, ok := m.MatchWithParams("load core")
	require.True(t, ok)
	require.Len(t, info.Groups, 4)

	text, matched := info.Group(2)
	require.False(t, matched)
	require.Empty(t, text)
	require.Equal(t, -1, info.Groups[2].Start)
	require.Equal(t, -1, info.Groups[2].End)
}

func TestMatchWithParams_NoMatch(t *testing.T) {
	m := MustCompile("^load ([a-z]+)$", FlagRegex)
	info, ok := m.MatchWithParams("unload core")
	require.False(t, ok)
	require.Nil(t, info)
}

func TestMatchWithParams_NonRegexReportsFullMatch(t *testing.T) {
	m := MustCompile("lo*", 0)
	info, ok := m.MatchWithParams("load")
	require.True(t, ok)
	require.Equal(t, 1, info.GroupCount())
	text, _ := info.Group(0)
	require.Equal(t, "load", text)
}

func TestMatchWithParams_LeftmostLongest(t *testing.T) {
	m := MustCompile("(a|ab)(c|bcd)", FlagRegex)
	info, ok := m.MatchWithParams("abcd")
	require.True(t, ok)
	full, _ := info.Group(0)
	require.Equal(t, "abcd", full)
}

func TestMatchInfo_OutOfRange(t *testing.T) {
	var nilInfo *MatchInfo
	require.Equal(t, 0, nilInfo.GroupCount())
	_, ok := nilInfo.Group(0)
	require.False(t, ok)

	info := &MatchInfo{Groups: []Group{{Text: "x", Matched: true}}}
	_, ok = info.Group(3)
	require.False(t, ok)
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	require.False(t, m.Match("x"))
	_, ok := m.MatchWithParams("x")
	require.False(t, ok)
}

func TestFlags_String(t *testing.T) {
	require.Equal(t, "none", Flags(0).String())
	require.Equal(t, "case-insensitive|regex", (FlagCaseInsensitive | FlagRegex).String())
	require.True(t, strings.Contains(FlagGlob.String(), "glob"))
}

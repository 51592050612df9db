package parse

import "strings"

const shellSpecial = " \t\n\r\"'\\&|;<>()$`*?[]#~"

// NeedsQuoting reports whether s holds whitespace or a shell metacharacter.
func NeedsQuoting(s string) bool {
	return strings.ContainsAny(s, shellSpecial)
}

// Quote returns s unchanged when it is safe as a single token, otherwise
// wrapped in double quotes with " \ $ and ` backslash-escaped. Parse reads a
// quoted token back to s.
func Quote(s string) string {
	if !NeedsQuoting(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\', '$', '`':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// QuoteArgs quotes each token and joins them with single spaces.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}

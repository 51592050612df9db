package parse

import (
	"strings"

	"github.com/nexuslink/nlink/internal/status"
)

// Minimal is a command in the short form component[@version][:function][=args].
// Empty fields are absent.
type Minimal struct {
	Component string
	Version   string
	Function  string
	Args      string
}

// String renders m back into the minimal syntax.
func (m Minimal) String() string {
	var sb strings.Builder
	sb.WriteString(m.Component)
	if m.Version != "" {
		sb.WriteString("@" + m.Version)
	}
	if m.Function != "" {
		sb.WriteString(":" + m.Function)
	}
	if m.Args != "" {
		sb.WriteString("=" + m.Args)
	}
	return sb.String()
}

// ParseMinimal parses the minimal command syntax. The component runs up to
// the first of @, : or = and must not be empty. The version runs up to : or =,
// the function up to =, and everything after = is the argument blob.
func ParseMinimal(input string) (Minimal, error) {
	input = strings.TrimSpace(input)

	var m Minimal
	end := strings.IndexAny(input, "@:=")
	if end < 0 {
		end = len(input)
	}
	m.Component = input[:end]
	if m.Component == "" {
		return Minimal{}, status.InvalidParameter("minimal command has no component: %q", input)
	}
	rest := input[end:]

	if strings.HasPrefix(rest, "@") {
		rest = rest[1:]
		end = strings.IndexAny(rest, ":=")
		if end < 0 {
			end = len(rest)
		}
		m.Version, rest = rest[:end], rest[end:]
	}

	if strings.HasPrefix(rest, ":") {
		rest = rest[1:]
		end = strings.IndexByte(rest, '=')
		if end < 0 {
			end = len(rest)
		}
		m.Function, rest = rest[:end], rest[end:]
	}

	if strings.HasPrefix(rest, "=") {
		m.Args = rest[1:]
	}

	return m, nil
}

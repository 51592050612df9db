package config

import "strings"

// Set replaces the value of key in lines, or appends it. The boolean reports
// whether an existing line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}

	for i, line := range lines {
		if lineKey(line) == key {
			lines[i] = key + "=" + value
			return lines, true
		}
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

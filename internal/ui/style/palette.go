package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorConfig holds the semantic colors. Each value is an ANSI color number
// (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
}

var (
	darkPalette = ColorConfig{
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Prompt:  "12",
	}
	lightPalette = ColorConfig{
		Success: "28",
		Warning: "130",
		Error:   "160",
		Info:    "25",
		Muted:   "242",
		Header:  "bold",
		Prompt:  "26",
	}
)

// IsDarkBackground reports whether the terminal background is dark.
func IsDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}

// LoadColorConfig picks the palette for the terminal background and applies
// color_* overrides from cfg. Invalid overrides are ignored.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	colors := lightPalette
	if IsDarkBackground() {
		colors = darkPalette
	}
	return applyOverrides(colors, cfg)
}

func applyOverrides(colors ColorConfig, cfg map[string]string) ColorConfig {
	fields := map[string]*string{
		"color_success": &colors.Success,
		"color_warning": &colors.Warning,
		"color_error":   &colors.Error,
		"color_info":    &colors.Info,
		"color_muted":   &colors.Muted,
		"color_header":  &colors.Header,
		"color_prompt":  &colors.Prompt,
	}
	for key, field := range fields {
		if value, ok := cfg[key]; ok && validColor(value) {
			*field = strings.TrimSpace(value)
		}
	}
	return colors
}

func validColor(value string) bool {
	value = strings.TrimSpace(value)
	if value == "bold" {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}

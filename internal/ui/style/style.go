// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	promptStyle  lipgloss.Style
)

// Init turns styling on or off and loads colors from cfg. NO_COLOR and
// NLINK_NO_COLOR disable styling regardless of enable.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("NLINK_NO_COLOR") != "" {
		enable = false
	}

	var c ColorConfig
	if enable {
		c = LoadColorConfig(cfg)
	}
	apply(enable, c)
}

func apply(enable bool, c ColorConfig) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	colors = c
	if !enable {
		return
	}

	// 256 colors regardless of what the output looks like; callers decide
	// whether to enable styling at all.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(c.Success)
	warningStyle = makeStyle(c.Warning)
	errorStyle = makeStyle(c.Error)
	infoStyle = makeStyle(c.Info)
	mutedStyle = makeStyle(c.Muted)
	headerStyle = makeStyle(c.Header)
	promptStyle = makeStyle(c.Prompt).Bold(true)
}

// GetColors returns the active colors, zero when styling is disabled.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(&successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(&warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(&errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(&infoStyle, text) }

// Header styles text for section headers or titles.
func Header(text string) string { return render(&headerStyle, text) }

// Muted styles text for less important or secondary information.
func Muted(text string) string { return render(&mutedStyle, text) }

// Prompt styles the interactive prompt.
func Prompt(text string) string { return render(&promptStyle, text) }

// Package repl is the terminal shell behind nlink --interactive.
package repl

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/ui/style"
)

// Executor runs one line and returns what it printed.
type Executor func(line string) (string, error)

// Config configures the shell.
type Config struct {
	Prompt string
	// History is recalled with the up and down keys, oldest first.
	History []string
	Exec    Executor
	Styler  domain.Styler
}

// Model is the Bubble Tea model for the shell.
type Model struct {
	input   textinput.Model
	prompt  string
	exec    Executor
	styler  domain.Styler
	history []string
	cursor  int
	draft   string
	done    bool
}

func New(cfg Config) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = "nexus> "
	}
	if cfg.Styler == nil {
		cfg.Styler = style.NopStyler{}
	}
	if cfg.Exec == nil {
		cfg.Exec = func(string) (string, error) { return "", nil }
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.CharLimit = 4096
	ti.Focus()

	history := append([]string(nil), cfg.History...)
	return Model{
		input:   ti,
		prompt:  cfg.Prompt,
		exec:    cfg.Exec,
		styler:  cfg.Styler,
		history: history,
		cursor:  len(history),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.done = true
				return m, tea.Quit
			}

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			m.recall(-1)
			return m, nil

		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.draft = ""
	echo := m.prompt + line

	switch line {
	case "":
		m.cursor = len(m.history)
		return m, tea.Println(echo)
	case "exit", "quit":
		m.done = true
		return m, tea.Sequence(tea.Println(echo), tea.Quit)
	}

	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	m.cursor = len(m.history)

	out, err := m.exec(line)
	text := echo
	if out = strings.TrimRight(out, "\n"); out != "" {
		text += "\n" + out
	}
	if err != nil {
		text += "\n" + m.styler.Error("Error: "+err.Error())
	}
	return m, tea.Println(text)
}

// recall moves through the history. Moving past the newest entry restores
// the line being typed.
func (m *Model) recall(delta int) {
	next := m.cursor + delta
	if next < 0 || next > len(m.history) {
		return
	}
	if m.cursor == len(m.history) {
		m.draft = m.input.Value()
	}
	m.cursor = next

	if m.cursor == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.cursor])
	}
	m.input.CursorEnd()
}

// View implements tea.Model
func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.input.View()
}

// Done reports whether the user asked to leave the shell.
func (m Model) Done() bool {
	return m.done
}

// Value returns the line being edited.
func (m Model) Value() string {
	return m.input.Value()
}

// History returns the lines entered so far, including recalled ones.
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// Run starts the shell on in and out until the user exits or ctx ends.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(cfg),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}

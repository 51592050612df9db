package cli

import (
	"github.com/nexuslink/nlink/internal/domain"
)

// recordHistory stores line unless history is off or a history_ignore
// pattern matches it. Storage failures are logged, never returned.
func (c *CLI) recordHistory(line string, success bool) {
	if !c.history || line == "" || c.ignored(line) {
		return
	}
	err := c.app.Store.AddHistory(domain.HistoryEntry{
		SessionID: c.app.SessionID,
		Line:      line,
		Success:   success,
	})
	if err != nil {
		c.app.Logger.Warn("history: %v", err)
	}
}

func (c *CLI) ignored(line string) bool {
	for _, g := range c.historyIgnore {
		if g.Match(line) {
			return true
		}
	}
	return false
}

// History returns up to limit of the most recent lines, oldest first.
func (c *CLI) History(limit int) []string {
	if c.ready() != nil {
		return nil
	}
	entries, err := c.app.Store.ListHistory(limit)
	if err != nil {
		c.app.Logger.Warn("history: %v", err)
		return nil
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	return lines
}

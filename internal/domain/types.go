package domain

import "time"

// Component is one entry of the component catalog.
type Component struct {
	Name        string
	Version     string
	Category    string
	Description string
}

// LoadEvent records that a component was loaded during a session.
type LoadEvent struct {
	ID        int64
	SessionID string
	Component string
	Version   string
	Function  string
	Timestamp time.Time
}

// HistoryEntry is one executed command line.
type HistoryEntry struct {
	ID        int64
	SessionID string
	Line      string
	Success   bool
	Timestamp time.Time
}

// Pipeline is a named ordered list of stages.
type Pipeline struct {
	ID        int64
	Name      string
	Stages    []string
	CreatedAt time.Time
}

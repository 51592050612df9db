package domain

import (
	"io"
)

// ComponentStore reads the component catalog and records loads.
type ComponentStore interface {
	// ListComponents returns catalog entries ordered by name and version.
	// An empty category lists everything.
	ListComponents(category string) ([]Component, error)

	// FindComponent resolves a component by name. An empty version selects the
	// highest registered version.
	FindComponent(name, version string) (Component, error)

	// HasComponent reports whether any version of name is in the catalog.
	HasComponent(name string) (bool, error)

	// RecordLoad stores a load event.
	RecordLoad(event LoadEvent) error

	// ListLoads returns the load events of a session, oldest first. An empty
	// session lists every event.
	ListLoads(sessionID string) ([]LoadEvent, error)

	// LoadStats returns the number of load events and of distinct components loaded.
	LoadStats() (events int, distinct int, err error)
}

// HistoryStore keeps the lines executed by the CLI.
type HistoryStore interface {
	// AddHistory appends a line to the command history.
	AddHistory(entry HistoryEntry) error

	// ListHistory returns up to limit of the most recent lines, oldest first.
	ListHistory(limit int) ([]HistoryEntry, error)

	// CountHistory returns the number of stored lines.
	CountHistory() (int, error)
}

// PipelineStore manages named pipelines and their ordered stages.
type PipelineStore interface {
	CreatePipeline(name string) (Pipeline, error)
	GetPipeline(name string) (Pipeline, error)
	AddStage(pipeline, stage string) (Pipeline, error)
	RemoveStage(pipeline, stage string) (Pipeline, error)
	DeletePipeline(name string) error
	CountPipelines() (int, error)
}

// Store is the persistent state of the application.
type Store interface {
	ComponentStore
	HistoryStore
	PipelineStore

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value, restoring its default.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer
	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Store     Store
	Config    ConfigProvider
	Logger    Logger
	Output    OutputWriter
	Styler    Styler
	SessionID string
}

package app

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/nexuslink/nlink/internal/config"
	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/log"
	"github.com/nexuslink/nlink/internal/paths"
	"github.com/nexuslink/nlink/internal/store"
	"github.com/nexuslink/nlink/internal/ui"
	"github.com/nexuslink/nlink/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	ConfigPath string
	DBPath     string

	LogEnabled bool
	LogPath    string
	LogLevel   log.Level

	StyleEnabled bool
	StyleConfig  map[string]string

	// Output defaults to stdout.
	Output io.Writer
}

// DefaultOptions reads ~/.nlinkrc and fills in the standard locations.
func DefaultOptions() Options {
	opts := Options{
		DBPath:       paths.DBPath(),
		LogPath:      paths.LogFilePath(),
		LogLevel:     log.LevelWarn,
		StyleEnabled: true,
	}

	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return opts
	}
	opts.ConfigPath = configPath

	cfg := config.NewProvider(configPath)
	opts.LogEnabled = config.Bool(cfg, "enable_log")
	if level, ok := cfg.Get("log_level"); ok {
		opts.LogLevel = log.ParseLevel(level)
	}
	opts.StyleConfig, _ = cfg.GetAll()

	return opts
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBPath()
	}
	s, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	var cfg domain.ConfigProvider = config.Static{}
	if opts.ConfigPath != "" {
		cfg = config.NewProvider(opts.ConfigPath)
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	app := &domain.Application{
		Store:     s,
		Config:    cfg,
		Logger:    logger,
		Output:    ui.NewWriterTo(out),
		Styler:    style.NewStyler(),
		SessionID: uuid.NewString(),
	}
	logger.Info("session %s started (db %s)", app.SessionID, dbPath)
	return app, nil
}

// NewForTesting creates an Application around s that writes to out, with no
// logging, no styling and an in-memory configuration.
func NewForTesting(out io.Writer, s domain.Store) *domain.Application {
	return &domain.Application{
		Store:     s,
		Config:    config.Static{},
		Logger:    log.NopLogger{},
		Output:    ui.NewWriterTo(out),
		Styler:    style.NopStyler{},
		SessionID: uuid.NewString(),
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app == nil {
		return nil
	}
	var firstErr error
	if app.Store != nil {
		firstErr = app.Store.Close()
	}
	if app.Logger != nil {
		if err := app.Logger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

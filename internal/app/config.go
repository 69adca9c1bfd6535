package app

import (
	"time"

	"github.com/spf13/afero"

	"baseproject/internal/config"
	"baseproject/internal/theme"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Silent suppresses CLI log output
	Silent bool

	// HostLogs delivers log entries on Application.LogEntries instead of
	// writing them to stderr
	HostLogs bool

	// Configuration directory (optional)
	// When empty, $BASEPROJECT_CONFIG_DIR or the per-user config directory is used
	ConfigDir string

	// ReadOnly opens the document for inspection: nothing is seeded, backed up
	// or saved, and mutating calls fail with ErrReadOnly
	ReadOnly bool

	// Watch reloads the document when another process edits it
	Watch bool

	// RetryDelay is the pause before a failed save is retried
	RetryDelay time.Duration

	// Fs overrides the OS filesystem
	Fs afero.Fs

	// Reporter receives diagnostic events in addition to the built-in recorder
	Reporter config.Reporter

	// ThemeProvider overrides the OS theme query
	ThemeProvider theme.HintProvider

	// OnChange is called with the reloaded document after an external edit
	OnChange func(config.Document)
}

// NewConfig creates a new application configuration
func NewConfig(debug, silent bool, configDir string) *Config {
	return &Config{
		Debug:      debug,
		Silent:     silent,
		ConfigDir:  configDir,
		RetryDelay: 100 * time.Millisecond,
	}
}

package app

import (
	"io"
	"os"

	"baseproject/pkg/logging"
)

// initLogging selects the logging mode.
//
// CLI mode writes warnings (everything with Debug) to stderr so command
// output on stdout stays machine-readable. Host mode hands entries to the
// embedding window host over a channel, which the host drains into its own
// sink.
func initLogging(cfg *Config) <-chan logging.LogEntry {
	level := logging.LevelInfo
	if cfg.Debug {
		level = logging.LevelDebug
	}

	if cfg.HostLogs {
		return logging.InitForHost(level)
	}
	if !cfg.Debug {
		// Lifecycle chatter is noise in a one-shot command.
		level = logging.LevelWarn
	}

	var out io.Writer = os.Stderr
	if cfg.Silent {
		out = io.Discard
	}
	logging.InitForCLI(level, out)
	return nil
}

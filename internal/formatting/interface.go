// Package formatting renders configuration documents, sections and
// diagnostic events for the command line.
//
// Every formatter supports the same operations so commands pick the output
// format once (console, JSON, YAML, table) and never branch on it again.
package formatting

import (
	"io"
	"os"

	"baseproject/internal/config"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool      // Suppress decorative elements
	Color  bool      // Enable colored output
	Out    io.Writer // Defaults to os.Stdout
}

func (o Options) writer() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// Formatter provides unified formatting for configuration data
type Formatter interface {
	// Document formatting
	FormatDocument(doc config.Document) error
	FormatSection(key config.Key, section any) error

	// Diagnostics
	FormatEvents(events []config.Event) error

	// Generic data formatting (paths, raw values, messages)
	FormatData(data interface{}) error

	// Configuration
	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (OutputFormat, bool) {
	switch f := OutputFormat(name); f {
	case FormatConsole, FormatJSON, FormatYAML, FormatTable:
		return f, true
	}
	return "", false
}

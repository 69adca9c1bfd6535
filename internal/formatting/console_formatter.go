package formatting

import (
	"fmt"
	"strings"

	"baseproject/internal/config"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatDocument prints every section as "section.field = value" lines
func (f *ConsoleFormatter) FormatDocument(doc config.Document) error {
	for i, s := range documentSections(doc) {
		if i > 0 && !f.options.Quiet {
			fmt.Fprintln(f.options.writer())
		}
		if err := f.FormatSection(s.Key, s.Value); err != nil {
			return err
		}
	}
	return nil
}

// FormatSection prints one section
func (f *ConsoleFormatter) FormatSection(key config.Key, section any) error {
	fields, err := FlattenSection(section)
	if err != nil {
		return err
	}
	w := f.options.writer()
	if !f.options.Quiet {
		fmt.Fprintf(w, "[%s]\n", key)
	}
	for _, field := range fields {
		fmt.Fprintf(w, "%s.%s = %s\n", key, field.Path, field.Value)
	}
	return nil
}

// FormatEvents prints one line per event
func (f *ConsoleFormatter) FormatEvents(events []config.Event) error {
	w := f.options.writer()
	if len(events) == 0 {
		if !f.options.Quiet {
			fmt.Fprintln(w, "No events.")
		}
		return nil
	}
	for _, e := range toEventRecords(events) {
		parts := []string{e.Type, e.Reason}
		if e.Key != "" {
			parts = append(parts, e.Key)
		}
		if e.Path != "" {
			parts = append(parts, e.Path)
		}
		line := strings.Join(parts, " ")
		if e.Error != "" {
			line += ": " + e.Error
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// FormatData formats generic data (fallback to simple text representation)
func (f *ConsoleFormatter) FormatData(data interface{}) error {
	w := f.options.writer()
	switch d := data.(type) {
	case map[string]interface{}:
		fmt.Fprintln(w, PrettyJSON(d))
	case []interface{}:
		fmt.Fprintln(w, PrettyJSON(d))
	case []byte:
		fmt.Fprintln(w, string(d))
	case string:
		fmt.Fprintln(w, d)
	default:
		fmt.Fprintf(w, "%v\n", d)
	}
	return nil
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}

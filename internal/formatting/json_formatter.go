package formatting

import (
	"encoding/json"
	"fmt"

	"baseproject/internal/config"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatDocument writes the document in its on-disk shape
func (f *JSONFormatter) FormatDocument(doc config.Document) error {
	return f.write(doc)
}

// FormatSection writes a single section value
func (f *JSONFormatter) FormatSection(key config.Key, section any) error {
	return f.write(section)
}

// FormatEvents writes events as a JSON array
func (f *JSONFormatter) FormatEvents(events []config.Event) error {
	return f.write(toEventRecords(events))
}

// FormatData formats generic data as JSON
func (f *JSONFormatter) FormatData(data interface{}) error {
	switch d := data.(type) {
	case json.RawMessage:
		return f.writeRaw(d)
	case []byte:
		return f.writeRaw(d)
	}
	return f.write(data)
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

// write prints v indented, or compact in quiet mode.
func (f *JSONFormatter) write(v interface{}) error {
	var (
		b   []byte
		err error
	)
	if f.options.Quiet {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	_, err = fmt.Fprintln(f.options.writer(), string(b))
	return err
}

func (f *JSONFormatter) writeRaw(raw []byte) error {
	if !json.Valid(raw) {
		return f.write(string(raw))
	}
	return f.write(json.RawMessage(raw))
}

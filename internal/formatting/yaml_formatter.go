package formatting

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"baseproject/internal/config"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatDocument writes the document as YAML
func (f *YAMLFormatter) FormatDocument(doc config.Document) error {
	return f.write(doc)
}

// FormatSection writes a single section value as YAML
func (f *YAMLFormatter) FormatSection(key config.Key, section any) error {
	return f.write(section)
}

// FormatEvents writes events as a YAML sequence
func (f *YAMLFormatter) FormatEvents(events []config.Event) error {
	return f.write(toEventRecords(events))
}

// FormatData formats generic data as YAML. Raw JSON is decoded first so it
// renders as YAML rather than as a quoted string.
func (f *YAMLFormatter) FormatData(data interface{}) error {
	var raw []byte
	switch d := data.(type) {
	case json.RawMessage:
		raw = d
	case []byte:
		raw = d
	}
	if raw != nil {
		var decoded interface{}
		if err := json.Unmarshal(raw, &decoded); err == nil {
			return f.write(decoded)
		}
		return f.write(string(raw))
	}
	return f.write(data)
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

func (f *YAMLFormatter) write(v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format YAML: %w", err)
	}
	_, err = f.options.writer().Write(b)
	return err
}

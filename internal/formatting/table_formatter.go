package formatting

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"baseproject/internal/config"
	pkgstrings "baseproject/pkg/strings"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatDocument renders one table with a row per field of every section
func (f *TableFormatter) FormatDocument(doc config.Document) error {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("SECTION"), f.header("FIELD"), f.header("VALUE")})

	for i, s := range documentSections(doc) {
		fields, err := FlattenSection(s.Value)
		if err != nil {
			return err
		}
		if i > 0 {
			t.AppendSeparator()
		}
		for _, field := range fields {
			t.AppendRow(table.Row{f.accent(string(s.Key)), field.Path, field.Value})
		}
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})

	t.Render()
	return nil
}

// FormatSection renders the fields of one section
func (f *TableFormatter) FormatSection(key config.Key, section any) error {
	fields, err := FlattenSection(section)
	if err != nil {
		return err
	}
	t := f.createTable()
	if !f.options.Quiet {
		t.SetTitle(string(key))
	}
	t.AppendHeader(table.Row{f.header("FIELD"), f.header("VALUE")})
	for _, field := range fields {
		t.AppendRow(table.Row{f.accent(field.Path), field.Value})
	}
	t.Render()
	return nil
}

// FormatEvents renders diagnostic events
func (f *TableFormatter) FormatEvents(events []config.Event) error {
	if len(events) == 0 {
		if !f.options.Quiet {
			fmt.Fprint(f.options.writer(), f.formatEmptyMessage("📋", "No events"))
		}
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{f.header("TYPE"), f.header("REASON"), f.header("SECTION"), f.header("DETAIL")})
	for _, e := range toEventRecords(events) {
		detail := e.Error
		if detail == "" {
			detail = e.Path
		}
		typ := e.Type
		if f.options.Color && typ == string(config.EventTypeWarning) {
			typ = text.FgYellow.Sprint(typ)
		}
		t.AppendRow(table.Row{typ, e.Reason, e.Key, pkgstrings.TruncateCell(detail, pkgstrings.DefaultCellMaxLen)})
	}
	t.Render()
	return nil
}

// FormatData formats generic data using table logic
func (f *TableFormatter) FormatData(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		return f.formatObjectData(d)
	case []byte:
		fmt.Fprintln(f.options.writer(), string(d))
	case string:
		fmt.Fprintln(f.options.writer(), d)
	default:
		fmt.Fprintf(f.options.writer(), "%v\n", d)
	}
	return nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.writer())
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	if f.options.Color {
		return text.FgHiCyan.Sprint(s)
	}
	return s
}

func (f *TableFormatter) accent(s string) string {
	if f.options.Color {
		return text.FgHiCyan.Sprint(s)
	}
	return s
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(icon, message string) string {
	if !f.options.Color {
		return fmt.Sprintf("%s %s\n", icon, message)
	}
	return fmt.Sprintf("%s %s\n", text.FgYellow.Sprint(icon), text.FgYellow.Sprint(message))
}

// formatObjectData formats object data as key-value pairs
func (f *TableFormatter) formatObjectData(data map[string]interface{}) error {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("KEY"), f.header("VALUE")})

	for key, value := range data {
		t.AppendRow(table.Row{f.accent(key), pkgstrings.TruncateCell(fmt.Sprintf("%v", value), pkgstrings.DefaultCellMaxLen)})
	}
	t.SortBy([]table.SortBy{{Number: 1, Mode: table.Asc}})

	t.Render()
	return nil
}

package formatting

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"baseproject/internal/config"
)

// PrettyJSON formats any value as indented JSON for human-readable display.
// It handles marshaling errors gracefully by falling back to fmt.Sprintf.
//
// Example:
//
//	data := map[string]interface{}{"name": "test", "value": 42}
//	fmt.Println(formatting.PrettyJSON(data))
//	// Output:
//	// {
//	//   "name": "test",
//	//   "value": 42
//	// }
func PrettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// Field is one leaf of a flattened section.
type Field struct {
	Path  string
	Value string
}

// FlattenSection lists the leaves of a section in declaration order, nested
// objects joined with dots ("main_panel_layout.horizontal"). Arrays are kept
// as one compact JSON value.
func FlattenSection(section any) ([]Field, error) {
	data, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}
	var fields []Field
	flatten(gjson.ParseBytes(data), "", &fields)
	return fields, nil
}

func flatten(v gjson.Result, prefix string, out *[]Field) {
	if !v.IsObject() {
		value := v.Raw
		if v.Type == gjson.String {
			value = v.String()
		}
		*out = append(*out, Field{Path: prefix, Value: value})
		return
	}
	v.ForEach(func(key, child gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		flatten(child, path, out)
		return true
	})
}

// documentSections pairs each section of doc with its key, in document order.
func documentSections(doc config.Document) []sectionEntry {
	return []sectionEntry{
		{Key: config.KeyProjectConfig, Value: doc.ProjectConfig},
		{Key: config.KeyWindowConfig, Value: doc.WindowConfig},
		{Key: config.KeyWindowState, Value: doc.WindowState},
	}
}

type sectionEntry struct {
	Key   config.Key
	Value any
}

// eventRecord is the serialized form of a config.Event.
type eventRecord struct {
	ID     string `json:"id" yaml:"id"`
	Time   string `json:"time" yaml:"time"`
	Type   string `json:"type" yaml:"type"`
	Reason string `json:"reason" yaml:"reason"`
	Key    string `json:"section,omitempty" yaml:"section,omitempty"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func toEventRecords(events []config.Event) []eventRecord {
	records := make([]eventRecord, 0, len(events))
	for _, e := range events {
		r := eventRecord{
			ID:     e.ID,
			Time:   e.Time.Format("2006-01-02T15:04:05.000Z07:00"),
			Type:   string(e.Type),
			Reason: string(e.Reason),
			Key:    string(e.Key),
			Path:   e.Path,
		}
		if e.Err != nil {
			r.Error = e.Err.Error()
		}
		records = append(records, r)
	}
	return records
}

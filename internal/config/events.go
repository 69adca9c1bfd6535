package config

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"baseproject/pkg/logging"
)

// EventType is the severity of a diagnostic event.
type EventType string

const (
	// EventTypeNormal marks expected lifecycle events.
	EventTypeNormal EventType = "Normal"
	// EventTypeWarning marks recoverable problems.
	EventTypeWarning EventType = "Warning"
)

// EventReason is the machine-readable cause of an event.
type EventReason string

const (
	ReasonSectionSeeded          EventReason = "SectionSeeded"
	ReasonSectionFallbackMissing EventReason = "SectionFallbackMissing"
	ReasonSectionFallbackInvalid EventReason = "SectionFallbackInvalid"

	ReasonDocumentCorrupt    EventReason = "DocumentCorrupt"
	ReasonDocumentUnreadable EventReason = "DocumentUnreadable"
	ReasonDocumentInMemory   EventReason = "DocumentInMemory"
	ReasonDocumentSaved      EventReason = "DocumentSaved"
	ReasonExternalChange     EventReason = "ExternalChange"

	ReasonSaveRetried EventReason = "SaveRetried"
	ReasonSaveFailed  EventReason = "SaveFailed"
)

var reasonTypes = map[EventReason]EventType{
	ReasonSectionSeeded:          EventTypeNormal,
	ReasonSectionFallbackMissing: EventTypeWarning,
	ReasonSectionFallbackInvalid: EventTypeWarning,
	ReasonDocumentCorrupt:        EventTypeWarning,
	ReasonDocumentUnreadable:     EventTypeWarning,
	ReasonDocumentInMemory:       EventTypeWarning,
	ReasonDocumentSaved:          EventTypeNormal,
	ReasonExternalChange:         EventTypeNormal,
	ReasonSaveRetried:            EventTypeWarning,
	ReasonSaveFailed:             EventTypeWarning,
}

// Event is a structured diagnostic emitted by the store, initializer and
// accessor. Components never format these for display.
type Event struct {
	ID     string
	Time   time.Time
	Type   EventType
	Reason EventReason
	Key    Key
	Path   string
	Err    error
}

// NewEvent stamps an event with a fresh ID, the current time and the type
// implied by reason.
func NewEvent(reason EventReason, key Key, path string, err error) Event {
	typ, ok := reasonTypes[reason]
	if !ok {
		typ = EventTypeNormal
	}
	return Event{
		ID:     uuid.NewString(),
		Time:   time.Now(),
		Type:   typ,
		Reason: reason,
		Key:    key,
		Path:   path,
		Err:    err,
	}
}

// Reporter receives diagnostic events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

// LogReporter forwards events to pkg/logging under the given subsystem.
type LogReporter struct {
	Subsystem string
}

func (r LogReporter) Report(e Event) {
	subsystem := r.Subsystem
	if subsystem == "" {
		subsystem = "Config"
	}
	target := string(e.Key)
	if target == "" {
		target = e.Path
	}
	if e.Type == EventTypeWarning {
		logging.WarnErr(subsystem, e.Err, "%s: %s", e.Reason, target)
		return
	}
	logging.Debug(subsystem, "%s: %s", e.Reason, target)
}

// Recorder keeps every reported event in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in report order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reasons returns the reasons of the recorded events in report order.
func (r *Recorder) Reasons() []EventReason {
	events := r.Events()
	out := make([]EventReason, len(events))
	for i, e := range events {
		out[i] = e.Reason
	}
	return out
}

// Has reports whether an event with reason was recorded.
func (r *Recorder) Has(reason EventReason) bool {
	for _, e := range r.Events() {
		if e.Reason == reason {
			return true
		}
	}
	return false
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// MultiReporter fans an event out to every non-nil reporter.
func MultiReporter(reporters ...Reporter) Reporter {
	return ReporterFunc(func(e Event) {
		for _, r := range reporters {
			if r != nil {
				r.Report(e)
			}
		}
	})
}

// ReporterOrLog returns r, or a LogReporter for subsystem when r is nil.
func ReporterOrLog(r Reporter, subsystem string) Reporter {
	if r == nil {
		return LogReporter{Subsystem: subsystem}
	}
	return r
}

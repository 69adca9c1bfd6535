package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Policy selects how LoadSection treats an absent or malformed section.
type Policy int

const (
	// Strict returns SectionMissingError or DeserializationError.
	Strict Policy = iota
	// Lenient returns the schema default and reports a fallback event.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Source is the read side of the document store.
type Source interface {
	Get(key string) (json.RawMessage, bool)
}

// LoadSection converts the stored value of key into T under policy.
//
// A returned value is always fully populated: either every field came from
// the document or the whole value is the schema default. Fallbacks under
// Lenient are reported to r (a LogReporter when r is nil).
func LoadSection[T any](src Source, key Key, policy Policy, r Reporter) (T, error) {
	var zero T
	def, ok := Default(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	fallback, ok := def.(T)
	if !ok {
		return zero, fmt.Errorf("section %q holds %T, not %T", key, def, zero)
	}
	r = ReporterOrLog(r, "Accessor")

	raw, present := src.Get(string(key))
	if !present {
		if policy == Strict {
			return zero, &SectionMissingError{Key: key}
		}
		r.Report(NewEvent(ReasonSectionFallbackMissing, key, "", nil))
		return fallback, nil
	}

	value, err := decodeSection[T](raw)
	if err != nil {
		derr := &DeserializationError{Key: key, Err: err}
		if policy == Strict {
			return zero, derr
		}
		r.Report(NewEvent(ReasonSectionFallbackInvalid, key, "", derr))
		return fallback, nil
	}
	return value, nil
}

// LoadProject loads the project_config section.
func LoadProject(src Source, policy Policy, r Reporter) (ProjectSection, error) {
	return LoadSection[ProjectSection](src, KeyProjectConfig, policy, r)
}

// LoadWindowConfig loads the window_config section.
func LoadWindowConfig(src Source, policy Policy, r Reporter) (WindowConfigSection, error) {
	return LoadSection[WindowConfigSection](src, KeyWindowConfig, policy, r)
}

// LoadWindowState loads the window_state section.
func LoadWindowState(src Source, policy Policy, r Reporter) (WindowStateSection, error) {
	return LoadSection[WindowStateSection](src, KeyWindowState, policy, r)
}

// LoadDocument loads every section. Under Strict all section errors are
// joined; under Lenient it never fails.
func LoadDocument(src Source, policy Policy, r Reporter) (Document, error) {
	var (
		doc  Document
		errs []error
		err  error
	)
	if doc.ProjectConfig, err = LoadProject(src, policy, r); err != nil {
		errs = append(errs, err)
	}
	if doc.WindowConfig, err = LoadWindowConfig(src, policy, r); err != nil {
		errs = append(errs, err)
	}
	if doc.WindowState, err = LoadWindowState(src, policy, r); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Document{}, errors.Join(errs...)
	}
	return doc, nil
}

// ValidateSection checks raw against the shape of key's section without
// consulting any store.
func ValidateSection(key Key, raw json.RawMessage) error {
	var err error
	switch key {
	case KeyProjectConfig:
		_, err = decodeSection[ProjectSection](raw)
	case KeyWindowConfig:
		_, err = decodeSection[WindowConfigSection](raw)
	case KeyWindowState:
		_, err = decodeSection[WindowStateSection](raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	if err != nil {
		return &DeserializationError{Key: key, Err: err}
	}
	return nil
}

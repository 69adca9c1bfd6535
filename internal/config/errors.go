package config

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned for keys outside the known section set.
var ErrUnknownSection = errors.New("unknown configuration section")

// IOError reports a failure to access the configuration directory or document.
type IOError struct {
	Op   string // "read", "mkdir", "stat", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WriteError reports a failed save. The document on disk is unchanged.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("config save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ParseError reports a document that is not a JSON object.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DeserializationError reports a section whose stored value does not match
// the section shape.
type DeserializationError struct {
	Key Key
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("config section %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// SectionMissingError reports an absent section under the Strict policy.
type SectionMissingError struct {
	Key Key
}

func (e *SectionMissingError) Error() string {
	return fmt.Sprintf("config section %q is missing", e.Key)
}

// IsSectionMissing reports whether err wraps a SectionMissingError.
func IsSectionMissing(err error) bool {
	var missing *SectionMissingError
	return errors.As(err, &missing)
}

// IsDeserialization reports whether err wraps a DeserializationError.
func IsDeserialization(err error) bool {
	var de *DeserializationError
	return errors.As(err, &de)
}

// IsParse reports whether err wraps a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsIO reports whether err wraps an IOError.
func IsIO(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}

// IsWrite reports whether err wraps a WriteError.
func IsWrite(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}

package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"github.com/tidwall/sjson"

	"baseproject/internal/config"
	"baseproject/pkg/logging"
)

// ErrClosed is returned by mutating calls after Close.
var ErrClosed = errors.New("store: closed")

const documentPerm os.FileMode = 0o644

// Option configures a Store.
type Option func(*Store)

// WithFs replaces the OS filesystem, e.g. with afero.NewMemMapFs in tests.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) {
		s.fs = fsys
	}
}

// WithReporter sets the receiver of store diagnostics.
func WithReporter(r config.Reporter) Option {
	return func(s *Store) {
		s.reporter = r
	}
}

// Store owns the configuration document: one in-memory copy per process,
// loaded and saved as a whole.
//
// All methods are safe for concurrent use. Set and Get only touch memory.
// Save serializes the document under its own lock so concurrent saves reach
// disk in the order they took their snapshot.
type Store struct {
	mu     sync.RWMutex
	saveMu sync.Mutex

	fs         afero.Fs
	path       string
	persistent bool
	reporter   config.Reporter

	doc         map[string]json.RawMessage
	checksum    [sha256.Size]byte
	hasChecksum bool

	// writing is the checksum of a save between its first write and its
	// return, so a watcher firing mid-save recognizes the new file.
	writing    [sha256.Size]byte
	hasWriting bool
	closed     bool
}

func newStore(path string, opts []Option) *Store {
	s := &Store{
		fs:         afero.NewOsFs(),
		path:       filepath.Clean(path),
		persistent: true,
		doc:        make(map[string]json.RawMessage),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reporter = config.ReporterOrLog(s.reporter, "Store")
	return s
}

// Open loads the document at path. An absent file yields an empty document;
// nothing is written until Save. When path is absent but a legacy file name
// exists in the same directory, the legacy file is loaded and the next Save
// writes path.
//
// Read failures return *config.IOError, undecodable content *config.ParseError.
func Open(path string, opts ...Option) (*Store, error) {
	s := newStore(path, opts)

	data, from, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	if data == nil {
		logging.Info("Store", "No document at %s, starting empty", s.path)
		return s, nil
	}

	doc, err := parseDocument(from, data)
	if err != nil {
		return nil, err
	}
	s.doc = doc
	if from == s.path {
		s.checksum = sha256.Sum256(data)
		s.hasChecksum = true
	} else {
		logging.Info("Store", "Adopted legacy document %s, next save writes %s", from, s.path)
	}
	logging.Info("Store", "Loaded %d section(s) from %s", len(doc), from)
	return s, nil
}

// New returns an empty document bound to path without reading it. It is used
// to replace an unreadable or corrupt document.
func New(path string, opts ...Option) *Store {
	return newStore(path, opts)
}

// NewMemory returns an empty document that is never written to disk.
func NewMemory(opts ...Option) *Store {
	opts = append([]Option{WithFs(afero.NewMemMapFs())}, opts...)
	s := newStore(string(filepath.Separator)+config.FileName, opts)
	s.persistent = false
	return s
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Persistent reports whether Save reaches the real filesystem.
func (s *Store) Persistent() bool {
	return s.persistent
}

// Get returns a copy of the raw value stored under key.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.doc[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(raw), true
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.doc[key]
	return ok
}

// Keys returns the present keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.doc))
	for k := range s.doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a deep copy of the document.
func (s *Store) Snapshot() map[string]json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDoc(s.doc)
}

// Set replaces the in-memory value of key. A json.RawMessage is stored as
// is after validation; anything else is marshalled. Disk is not touched.
func (s *Store) Set(key string, value any) error {
	raw, err := toRaw(value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.doc[key] = raw
	return nil
}

// SetPath sets one nested field of key's value, e.g. SetPath("window_state",
// "main_panel_layout.vertical", []float64{80, 20}). An absent key starts from
// an empty object.
func (s *Store) SetPath(key, path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	current, ok := s.doc[key]
	if !ok {
		current = json.RawMessage("{}")
	}

	var (
		updated []byte
		err     error
	)
	if raw, isRaw := value.(json.RawMessage); isRaw {
		if !json.Valid(raw) {
			return fmt.Errorf("set %s.%s: invalid JSON value", key, path)
		}
		updated, err = sjson.SetRawBytes(current, path, raw)
	} else {
		updated, err = sjson.SetBytes(current, path, value)
	}
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", key, path, err)
	}

	compacted, err := compact(updated)
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", key, path, err)
	}
	s.doc[key] = compacted
	return nil
}

// Delete removes key from the in-memory document.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.doc, key)
	return nil
}

// Save writes the whole document to a temporary file next to the target and
// renames it into place. On failure the previous file is left untouched and
// a *config.WriteError is returned.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	data, err := encodeDocument(s.doc)
	s.mu.RUnlock()
	if err != nil {
		return &config.WriteError{Path: s.path, Err: err}
	}

	sum := sha256.Sum256(data)
	s.mu.Lock()
	s.writing = sum
	s.hasWriting = true
	s.mu.Unlock()

	if err := writeFileAtomic(s.fs, s.path, data, documentPerm); err != nil {
		s.mu.Lock()
		s.hasWriting = false
		s.mu.Unlock()
		werr := &config.WriteError{Path: s.path, Err: err}
		logging.Error("Store", err, "Failed to save %s", s.path)
		return werr
	}

	s.mu.Lock()
	s.checksum = sum
	s.hasChecksum = true
	s.hasWriting = false
	s.mu.Unlock()

	s.reporter.Report(config.NewEvent(config.ReasonDocumentSaved, "", s.path, nil))
	logging.Debug("Store", "Saved %d bytes to %s", len(data), s.path)
	return nil
}

// Reload replaces the in-memory document with the file content. On error the
// in-memory document is kept. Unsaved in-memory changes are discarded on
// success.
func (s *Store) Reload() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return &config.IOError{Op: "read", Path: s.path, Err: err}
	}
	doc, err := parseDocument(s.path, data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.doc = doc
	s.checksum = sha256.Sum256(data)
	s.hasChecksum = true
	logging.Info("Store", "Reloaded %d section(s) from %s", len(doc), s.path)
	return nil
}

// Checksum returns the SHA-256 of the bytes last read from or written to the
// document path.
func (s *Store) Checksum() ([sha256.Size]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checksum, s.hasChecksum
}

// ownsContent reports whether sum matches the bytes the store last read or
// wrote, or the bytes of a save still in progress.
func (s *Store) ownsContent(sum [sha256.Size]byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (s.hasChecksum && s.checksum == sum) || (s.hasWriting && s.writing == sum)
}

// Close releases the store. It is safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	logging.Debug("Store", "Closed %s", s.path)
	return nil
}

func (s *Store) readDocument() ([]byte, string, error) {
	candidates := append([]string{s.path}, config.LegacyPaths(s.path)...)
	for _, p := range candidates {
		data, err := afero.ReadFile(s.fs, p)
		if err == nil {
			return data, p, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return nil, p, &config.IOError{Op: "read", Path: p, Err: err}
	}
	return nil, "", nil
}

func parseDocument(path string, data []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}
	if doc == nil {
		return nil, &config.ParseError{Path: path, Err: errors.New("document root is null")}
	}
	for k, v := range doc {
		c, err := compact(v)
		if err != nil {
			return nil, &config.ParseError{Path: path, Err: fmt.Errorf("section %s: %w", k, err)}
		}
		doc[k] = c
	}
	return doc, nil
}

// encodeDocument renders the document as indented JSON. Map keys are sorted,
// which puts the known sections in schema order.
func encodeDocument(doc map[string]json.RawMessage) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func toRaw(value any) (json.RawMessage, error) {
	if raw, ok := value.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, errors.New("invalid JSON value")
		}
		return compact(raw)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func compact(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func cloneDoc(doc map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(doc))
	for k, v := range doc {
		out[k] = bytes.Clone(v)
	}
	return out
}

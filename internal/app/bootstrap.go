package app

import (
	"context"
	"errors"
	"sync"

	"baseproject/internal/config"
	"baseproject/internal/theme"
	"baseproject/pkg/logging"
)

// ErrReadOnly is returned by mutating calls of an Application opened with
// Config.ReadOnly.
var ErrReadOnly = errors.New("configuration opened read-only")

// Application is the startup context handed to the window host. It owns the
// configuration document for the lifetime of the process.
//
// The Application follows a two-phase pattern:
//  1. Bootstrap: open the document, seed missing sections, load typed sections
//  2. Runtime: the host reads sections and writes window state back; saves
//     happen in the background
//
// Example usage:
//
//	cfg := app.NewConfig(false, false, "")
//	application := app.NewApplication(cfg)
//	defer application.Close(ctx)
//	ws := application.WindowState()
//	concrete := application.ResolveTheme(ctx)
type Application struct {
	mu sync.RWMutex

	config   *Config
	services *Services
	reporter config.Reporter
	events   *config.Recorder
	logs     <-chan logging.LogEntry

	doc     config.Document
	seeded  []config.Key
	openErr error

	cancel context.CancelFunc
	closed bool
}

// NewApplication creates and initializes a new application instance with the
// provided configuration. It performs the complete bootstrap sequence:
//
//  1. Configures logging based on the debug and host settings
//  2. Opens the document, degrading to an empty or in-memory document when the
//     file is unreadable, corrupt or cannot be created
//  3. Seeds every missing section with its default and saves once
//  4. Loads all sections leniently so every section is fully populated
//  5. Starts the background saver and, when enabled, the external-change watcher
//
// Document problems never fail startup; they are reported as events instead.
func NewApplication(cfg *Config) *Application {
	if cfg == nil {
		cfg = NewConfig(false, false, "")
	}
	logs := initLogging(cfg)

	events := config.NewRecorder()
	reporter := config.MultiReporter(events, config.LogReporter{Subsystem: "Bootstrap"}, cfg.Reporter)

	st, openErr := openStore(cfg, reporter)

	var seeded []config.Key
	if !cfg.ReadOnly {
		var err error
		seeded, err = config.Initialize(st, reporter)
		if err != nil {
			// The in-memory document is complete; the next save tries again.
			logging.WarnErr("Bootstrap", err, "Seeded defaults could not be saved")
		}
	}

	doc, _ := config.LoadDocument(st, config.Lenient, reporter)

	ctx, cancel := context.WithCancel(context.Background())
	a := &Application{
		config:   cfg,
		reporter: reporter,
		events:   events,
		logs:     logs,
		doc:      doc,
		seeded:   seeded,
		openErr:  openErr,
		cancel:   cancel,
	}
	a.services = initializeServices(ctx, cfg, st, reporter, a.onExternalChange)

	logging.Info("Bootstrap", "Configuration ready at %s (persistent: %t)", st.Path(), st.Persistent())
	return a
}

// Services returns the components backing the application.
func (a *Application) Services() *Services {
	return a.services
}

// Events returns every diagnostic event reported since startup.
func (a *Application) Events() []config.Event {
	return a.events.Events()
}

// LogEntries returns the host log channel, or nil in CLI mode.
func (a *Application) LogEntries() <-chan logging.LogEntry {
	return a.logs
}

// Seeded returns the sections that were filled with defaults during startup.
func (a *Application) Seeded() []config.Key {
	out := make([]config.Key, len(a.seeded))
	copy(out, a.seeded)
	return out
}

// OpenErr returns why the document on disk could not be used at startup, a
// *config.IOError or *config.ParseError, or nil. The application runs on a
// fresh document in that case.
func (a *Application) OpenErr() error {
	return a.openErr
}

// ResolveTheme resolves the stored theme against the OS preference.
func (a *Application) ResolveTheme(ctx context.Context) theme.Concrete {
	ws := a.WindowState()
	return theme.Resolve(ctx, ws.Theme, a.services.Theme)
}

// Flush waits until every change made so far has been written.
func (a *Application) Flush(ctx context.Context) error {
	return a.services.Saver.Flush(ctx)
}

// Reload rereads the document from disk and replaces the typed sections.
// Unsaved changes are lost.
func (a *Application) Reload() error {
	if err := a.services.Store.Reload(); err != nil {
		return err
	}
	a.reloadSections()
	return nil
}

func (a *Application) onExternalChange() {
	doc := a.reloadSections()
	if a.config.OnChange != nil {
		a.config.OnChange(doc)
	}
}

func (a *Application) reloadSections() config.Document {
	doc, _ := config.LoadDocument(a.services.Store, config.Lenient, a.reporter)
	a.mu.Lock()
	a.doc = doc
	a.mu.Unlock()
	return doc
}

// Close writes pending changes and releases the document. It is safe to call
// more than once.
func (a *Application) Close(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()

	if a.services.Watcher != nil {
		a.services.Watcher.Stop()
	}
	var saveErr error
	if !a.config.ReadOnly {
		saveErr = a.services.Saver.Stop(ctx)
	}
	a.cancel()
	closeErr := a.services.Store.Close()

	if a.config.HostLogs {
		logging.CloseHostChannel()
	}
	return errors.Join(saveErr, closeErr)
}

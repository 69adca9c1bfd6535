package app

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/afero"

	"baseproject/internal/config"
	"baseproject/internal/store"
	"baseproject/internal/theme"
	"baseproject/pkg/logging"
)

// corruptSuffix is appended to a document that could not be parsed before it
// is replaced.
const corruptSuffix = ".corrupt"

// Services holds the components backing an Application.
//
// Field descriptions:
//   - Store: the in-memory document and its file
//   - Saver: background, coalescing writer for Store
//   - Watcher: reloads Store on external edits; nil unless Config.Watch is set
//   - Theme: answers the OS light/dark question for the auto theme
type Services struct {
	Store   *store.Store
	Saver   *store.Saver
	Watcher *store.Watcher
	Theme   theme.HintProvider
}

// openStore resolves the document location and opens it, degrading instead of
// failing:
//
//  1. directory cannot be resolved or created: in-memory store
//  2. document unreadable: empty document bound to the same path
//  3. document corrupt: kept as <name>.corrupt, empty document bound to the path
//
// The returned error is the *config.IOError or *config.ParseError of cases 2
// and 3; the store is usable either way.
func openStore(cfg *Config, r config.Reporter) (*store.Store, error) {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	opts := []store.Option{store.WithFs(fsys), store.WithReporter(r)}

	dir, err := config.ResolveDir(cfg.ConfigDir)
	if err == nil && !cfg.ReadOnly {
		if mkErr := fsys.MkdirAll(dir, 0o755); mkErr != nil {
			err = &config.IOError{Op: "mkdir", Path: dir, Err: mkErr}
		}
	}
	if err != nil {
		r.Report(config.NewEvent(config.ReasonDocumentInMemory, "", dir, err))
		logging.Warn("Bootstrap", "Configuration will not be persisted this session")
		return store.NewMemory(store.WithReporter(r)), nil
	}

	path := config.DocumentPath(dir)
	s, err := store.Open(path, opts...)
	if err == nil {
		return s, nil
	}

	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		r.Report(config.NewEvent(config.ReasonDocumentCorrupt, "", parseErr.Path, err))
		if !cfg.ReadOnly {
			backupCorrupt(fsys, parseErr.Path)
		}
	} else {
		r.Report(config.NewEvent(config.ReasonDocumentUnreadable, "", path, err))
	}
	return store.New(path, opts...), err
}

// backupCorrupt moves a corrupt document aside so the next save does not
// destroy it. An existing backup is overwritten.
func backupCorrupt(fsys afero.Fs, path string) {
	backup := path + corruptSuffix
	if err := fsys.Rename(path, backup); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn("Bootstrap", "Could not keep corrupt document as %s: %v", backup, err)
		return
	}
	logging.Info("Bootstrap", "Kept corrupt document as %s", backup)
}

// initializeServices wires the saver, the optional watcher and the theme
// provider around st.
func initializeServices(ctx context.Context, cfg *Config, st *store.Store, r config.Reporter, onChange func()) *Services {
	saver := store.NewSaver(st,
		store.WithRetryDelay(cfg.RetryDelay),
		store.WithSaverReporter(r),
		store.WithSaverPath(st.Path()),
	)
	saver.Start(ctx)

	provider := cfg.ThemeProvider
	if provider == nil {
		provider = theme.NewSystemProvider()
	}

	services := &Services{
		Store: st,
		Saver: saver,
		Theme: provider,
	}

	if cfg.Watch && st.Persistent() {
		w := store.NewWatcher(st,
			store.WithWatcherReporter(r),
			store.WithOnChange(onChange),
		)
		if err := w.Start(ctx); err != nil {
			logging.WarnErr("Bootstrap", err, "External edits of %s will not be picked up", st.Path())
		} else {
			services.Watcher = w
		}
	}

	return services
}

// Package app provides application bootstrap and lifecycle management for the
// configuration subsystem of baseproject.
//
// # Architecture Overview
//
// The app package is the facade the window host talks to. It has four parts:
//
//  1. **Bootstrap (`bootstrap.go`)**: startup sequence and shutdown
//  2. **Configuration (`config.go`)**: settings of the subsystem itself
//  3. **Document access (`config_adapter.go`)**: typed reads and window state updates
//  4. **Services (`services.go`)**: store opening with recovery, saver, watcher, theme provider
//
// Logging mode selection lives in `modes.go`.
//
// # Startup
//
// NewApplication never fails because of the document. The possible outcomes:
//
//   - document absent: every section is seeded and saved once
//   - document partially present: only the absent sections are seeded
//   - document corrupt: it is kept as <name>.corrupt and a fresh document is seeded
//   - document unreadable: a fresh document is seeded at the same path
//   - directory not creatable: the document lives in memory for this session
//
// Each outcome is reported as a config.Event, available from Events.
//
// # Runtime
//
// Sections are read from an in-memory typed copy. Updates go through
// UpdateWindowState, SetProject, SetField and Reset, which write into the store and ask
// the background saver for a save. Bursts of updates (a window being dragged)
// collapse into few writes. Close flushes whatever is pending.
//
// # Usage
//
//	application := app.NewApplication(app.NewConfig(false, false, ""))
//	defer application.Close(ctx)
//
//	tmpl := application.WindowConfig()
//	ws := application.WindowState()
//	applyTheme(application.ResolveTheme(ctx))
//
//	_ = application.UpdateWindowState(func(ws *config.WindowStateSection) {
//		ws.Width, ws.Height = 1440, 900
//	})
package app

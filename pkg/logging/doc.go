// Package logging provides the structured logger used by every baseproject
// component.
//
// It is a thin layer over log/slog. Messages carry a subsystem name so that
// output can be filtered per component:
//
//   - Store: document open, save and reload
//   - Saver: background save coalescing and retries
//   - Watcher: external changes to the document
//   - Initializer: section seeding
//   - Accessor: typed section reads and fallbacks
//   - Theme: OS theme detection
//   - Bootstrap: startup and shutdown
//
// # Modes
//
// CLI mode writes text records to an io.Writer:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("Store", "Saved %s", path)
//
// Host mode hands entries to the embedding window host over a buffered
// channel. The host owns formatting and routing; a slow consumer never blocks
// the component that logs.
//
//	entries := logging.InitForHost(logging.LevelDebug)
//	go func() {
//		for e := range entries {
//			sink(e)
//		}
//	}()
//	defer logging.CloseHostChannel()
//
// Logging before either Init function is called is a no-op.
package logging

// Package store keeps the configuration document in memory and persists it.
//
// A Store holds the decoded top-level object as raw JSON values keyed by
// section name. Reads and writes only touch memory; Save writes the whole
// document through a temporary file and a rename so a crash never leaves a
// half-written file behind.
//
// The Saver coalesces save requests onto a background goroutine with a single
// retry, and the Watcher reloads the document when another process edits it.
//
//	s, err := store.Open(config.DocumentPath(dir))
//	if err != nil {
//		// *config.IOError or *config.ParseError
//	}
//	saver := store.NewSaver(s)
//	saver.Start(ctx)
//	_ = s.SetPath("window_state", "fullscreen", true)
//	saver.Request()
package store

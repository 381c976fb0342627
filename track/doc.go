// Package track provides opt-in lifecycle accounting for owned handles.
//
// The ownership core is passive: it releases handles and answers validity
// queries, nothing else. This package layers observation on top without
// changing the core's semantics or footprint.
//
// # Tracker
//
// A Tracker counts live handles per category and notifies observers:
//
//	tr := track.New(track.WithLogger(logger))
//
//	tr.Acquired("File", raw)
//	tr.Released("File", raw)
//
//	for _, s := range tr.Stats() {
//	    fmt.Printf("%s: %d live, %d total\n", s.Category, s.Live, s.Total)
//	}
//
// Close reports categories that still have live handles as leak errors:
//
//	if err := tr.Close(); err != nil {
//	    log.Printf("leaked: %v", err)
//	}
//
// # Traced Owners
//
// Traced wraps a category's trait record so every release is recorded with
// the package's default tracker. Acquire constructs a traced owner and
// records the acquisition in one step:
//
//	f := track.Acquire[windows.Handle, winres.File](raw)
//	defer f.Close() // the release is recorded automatically
//
// Traced trait types are zero-size, so a traced owner costs the same as an
// untraced one; the accounting happens only when handles actually move.
//
// # Logging
//
// The package logs through zap. The default logger is a no-op; install one
// with SetLogger before tracking begins.
package track

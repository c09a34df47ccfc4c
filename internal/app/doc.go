// Package app provides the application context for worldclock.
//
// This package manages application-wide dependencies using the functional
// options pattern, so commands can be tested with a fake clock and a fixed
// catalog.
//
// # App Context
//
//	type App struct {
//	    Clock   clockwork.Clock  // Time source for drivers and "now"
//	    Catalog *catalog.Catalog // Pinned catalog; nil means load from disk
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithClock(clockwork.NewFakeClockAt(t0)),
//	    app.WithCatalog(catalog.Default()),
//	)
package app

// Package app provides the application context for worldclock.
// It allows dependency injection for testing.
package app

import (
	"github.com/jonboulle/clockwork"

	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/errors"
	"github.com/firefly-engineering/worldclock/internal/logging"
	"github.com/firefly-engineering/worldclock/internal/selection"
	"github.com/firefly-engineering/worldclock/internal/ticker"
	"github.com/firefly-engineering/worldclock/internal/zonefmt"
)

// App holds the application dependencies
type App struct {
	// Clock is the time source for every instant the program shows
	Clock clockwork.Clock

	// Catalog, when set, replaces the catalog named on the command line
	Catalog *catalog.Catalog
}

// Option is a function that configures the App
type Option func(*App)

// WithClock sets a custom time source
func WithClock(c clockwork.Clock) Option {
	return func(a *App) {
		a.Clock = c
	}
}

// WithCatalog pins the catalog regardless of --catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// New creates a new App with the given options.
// Without WithClock the real clock is used.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Clock == nil {
		app.Clock = clockwork.NewRealClock()
	}

	return app
}

// LoadCatalog returns the pinned catalog or loads the named one, and checks
// that every zone in it resolves.
func (a *App) LoadCatalog(name string) (*catalog.Catalog, error) {
	cat := a.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.LoadNamed(name)
		if err != nil {
			return nil, err
		}
	}

	if err := zonefmt.Check(cat.Zones()...); err != nil {
		return nil, errors.ConfigError("catalog contains an unusable zone", err)
	}
	return cat, nil
}

// Selection builds the initial selection. An empty zones list means the
// catalog default.
func (a *App) Selection(cat *catalog.Catalog, zones []string) (*selection.Set, error) {
	if len(zones) == 0 {
		return selection.NewDefault(cat)
	}
	logging.Debug("initial selection from flags", "zones", zones)
	return selection.New(cat, zones)
}

// NewDriver creates a clock driver on the app's time source.
func (a *App) NewDriver(opts ...ticker.Option) *ticker.Driver {
	return ticker.New(append([]ticker.Option{ticker.WithClock(a.Clock)}, opts...)...)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/worldclock/internal/app"
	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/selection"
)

// loadCatalog loads the catalog named by --catalog.
func loadCatalog() (*catalog.Catalog, error) {
	return app.Default.LoadCatalog(catalogName)
}

// loadSelection loads the catalog and builds the initial selection from
// --zones, falling back to the catalog default.
func loadSelection() (*selection.Set, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	zones, err := catalog.ParseSelection(zonesFlag)
	if err != nil {
		return nil, err
	}

	return app.Default.Selection(cat, zones)
}

// signalContext derives a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// appNow reads the application clock.
func appNow() time.Time {
	return app.Default.Clock.Now()
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/worldclock/internal/app"
	"github.com/firefly-engineering/worldclock/internal/board"
	"github.com/firefly-engineering/worldclock/internal/logging"
	"github.com/firefly-engineering/worldclock/internal/tui"
)

var watchCount int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the selected zones every second",
	Long: `Prints the selected zones once per second without taking over the
terminal. Stops on Ctrl+C, or after --count tables when set.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "Stop after this many tables (0 = until interrupted)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchCount < 0 {
		logWarning("--count %d is negative, watching until interrupted", watchCount)
		watchCount = 0
	}

	sel, err := loadSelection()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	driver := app.Default.NewDriver()
	out := cmd.OutOrStdout()
	printed := 0

	b := board.New(sel, driver, func(instant time.Time, rows []board.Row) {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintln(out, tui.PlainView(instant, rows))
		printed++
		if watchCount > 0 && printed >= watchCount {
			cancel()
		}
	})

	b.Attach()
	stop := driver.Start(ctx)

	logging.Debug("watching", "selection", sel.IDs(), "count", watchCount)
	<-ctx.Done()

	// No render runs once both have returned.
	stop()
	b.Detach()

	if watchCount > 0 && printed >= watchCount {
		logSuccess("Printed %d tables", printed)
	}
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/worldclock/internal/app"
	"github.com/firefly-engineering/worldclock/internal/logging"
	"github.com/firefly-engineering/worldclock/internal/tui"
)

var (
	verbose     bool
	jsonOutput  bool
	catalogName string
	zonesFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "worldclock",
	Short: "Live multi-timezone clock for the terminal",
	Long: `worldclock shows the current time in several time zones at once.

The display refreshes every second. Zones come from a catalog, either the
built-in one or a TOML file under $XDG_CONFIG_HOME/worldclock.

Keys:
  j/k, arrows  - Move over the catalog
  space/enter  - Toggle the zone under the cursor
  1-9          - Toggle the n-th zone
  q/Esc        - Quit`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
	},
	RunE: runClock,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&catalogName, "catalog", "c", "", "Catalog file (name under the config dir, or a path)")
	rootCmd.PersistentFlags().StringVarP(&zonesFlag, "zones", "z", "", `Initial zone ids, e.g. "local new_york london"`)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)

func runClock(cmd *cobra.Command, args []string) error {
	sel, err := loadSelection()
	if err != nil {
		return err
	}

	logging.Debug("starting interactive clock", "selection", sel.IDs())

	// The alternate screen owns the terminal from here on.
	logging.Discard()

	ctx, stop := signalContext(cmd)
	defer stop()

	return tui.Run(ctx, sel, app.Default.NewDriver())
}

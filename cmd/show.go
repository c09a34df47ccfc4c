package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/worldclock/internal/board"
	"github.com/firefly-engineering/worldclock/internal/errors"
	"github.com/firefly-engineering/worldclock/internal/logging"
	"github.com/firefly-engineering/worldclock/internal/tui"
)

var showAt string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the selected zones once",
	Long: `Prints the time and date in every selected zone and exits.

Use --at to render a fixed instant instead of now, for example:
  worldclock show --at 2024-07-01T12:00:00Z --zones "new_york london"`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showAt, "at", "", "Instant to render (RFC 3339); defaults to now")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	sel, err := loadSelection()
	if err != nil {
		return err
	}

	instant := appNow()
	if showAt != "" {
		instant, err = time.Parse(time.RFC3339, showAt)
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError,
				fmt.Sprintf("invalid --at value %q: want RFC 3339, e.g. 2024-07-01T12:00:00Z", showAt), err)
		}
	}

	logging.Debug("rendering selection", "instant", instant, "selection", sel.IDs())

	rows, err := board.Rows(instant, sel.Descriptors())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.PlainView(instant, rows))
	return nil
}

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/worldclock/internal/zonefmt"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the zones in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	defaults := cat.DefaultSelection()
	now := appNow()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tZONE\tOFFSET\tDEFAULT")
	fmt.Fprintln(w, "-\t--\t----\t----\t------\t-------")

	for i, d := range cat.All() {
		offset, err := zonefmt.Offset(now, d.Zone)
		if err != nil {
			return err
		}
		def := ""
		if lo.Contains(defaults, d.ID) {
			def = "✓"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, d.ID, d.DisplayName, d.Zone, offset, def)
	}

	return w.Flush()
}

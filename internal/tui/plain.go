package tui

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/firefly-engineering/worldclock/internal/board"
)

// PlainView renders rows as an aligned, uncolored table.
func PlainView(instant time.Time, rows []board.Row) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "World Clock - %s\n", instant.UTC().Format(time.RFC3339))
	sb.WriteString(strings.Repeat("─", 60) + "\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Descriptor.DisplayName, r.Time, r.Date, r.Offset)
	}
	_ = w.Flush()

	return sb.String()
}

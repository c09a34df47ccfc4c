// Package tui provides the interactive terminal world clock.
//
// The display is a Bubble Tea program. A ticker.Driver feeds it instants as
// TickMsg values; key presses toggle zones in a selection.Set. The model
// keeps only the latest instant, so a slow terminal never sees a backlog.
//
//	sel, _ := selection.NewDefault(cat)
//	driver := ticker.New()
//	err := tui.Run(ctx, sel, driver)
//
// # Keys
//
//   - j/k or arrows move over the catalog
//   - space or enter toggles the zone under the cursor
//   - 1-9 toggle the n-th catalog zone directly
//   - q, esc or ctrl+c quit
//
// # Non-interactive output
//
// PlainView renders the same rows as an aligned table for the show and
// watch commands.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - key bindings and help
//   - github.com/charmbracelet/lipgloss - Styling
package tui

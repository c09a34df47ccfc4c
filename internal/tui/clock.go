package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/worldclock/internal/board"
	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/errors"
	"github.com/firefly-engineering/worldclock/internal/logging"
	"github.com/firefly-engineering/worldclock/internal/selection"
	"github.com/firefly-engineering/worldclock/internal/ticker"
)

// TickMsg carries a freshly captured instant from the clock driver.
type TickMsg time.Time

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(16)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Model is the bubbletea model for the world clock
type Model struct {
	selection *selection.Set
	catalog   *catalog.Catalog
	instant   time.Time
	cursor    int
	keys      keyMap
	help      help.Model
	err       error
	quitting  bool
	width     int
}

// NewModel creates a clock model showing sel at instant. The cursor starts
// on the first selected zone.
func NewModel(sel *selection.Set, instant time.Time) Model {
	cat := sel.Catalog()
	return Model{
		selection: sel,
		catalog:   cat,
		instant:   instant,
		cursor:    max(cat.Position(sel.IDs()[0]), 0),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init does nothing; instants arrive from the driver as TickMsg.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.instant = time.Time(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.catalog.Len()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.toggleAt(m.cursor)

		case key.Matches(msg, m.keys.Jump):
			n := int(msg.String()[0] - '1')
			if n < m.catalog.Len() {
				m.cursor = n
				m.toggleAt(n)
			}
		}
	}

	return m, nil
}

// toggleAt toggles the catalog entry at position i. A rejected toggle
// leaves the selection untouched and is shown on the status line.
func (m *Model) toggleAt(i int) {
	all := m.catalog.All()
	if i < 0 || i >= len(all) {
		return
	}

	id := all[i].ID
	if err := m.selection.Toggle(id); err != nil {
		logging.Debug("toggle rejected", "id", id, "error", err)
		m.err = err
		return
	}
	m.err = nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("World Clock"))
	b.WriteString("\n")

	rows, err := board.Rows(m.instant, m.selection.Descriptors())
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s  %s  %s\n",
			nameStyle.Render(r.Descriptor.DisplayName),
			timeStyle.Render(r.Time),
			r.Date,
			dimStyle.Render(r.Offset),
		)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Zones"))
	b.WriteString("\n")
	for i, d := range m.catalog.All() {
		check := "[ ]"
		if m.selection.Contains(d.ID) {
			check = "[x]"
		}
		line := fmt.Sprintf("%d %s %s", i+1, check, d.DisplayName)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(statusText(m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusText prefers the short user-facing message of a ClockError.
func statusText(err error) string {
	var ce *errors.ClockError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

// Instant returns the instant the model last rendered.
func (m Model) Instant() time.Time {
	return m.instant
}

// Run shows the interactive clock until the user quits or ctx is
// cancelled. The driver is started here and stopped on every exit path.
func Run(ctx context.Context, sel *selection.Set, driver *ticker.Driver, opts ...tea.ProgramOption) error {
	m := NewModel(sel, driver.Current())

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	unsubscribe := driver.Subscribe(func(now time.Time) {
		p.Send(TickMsg(now))
	})
	defer unsubscribe()

	stop := driver.Start(ctx)
	defer stop()

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

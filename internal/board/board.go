// Package board turns the current instant and selection into display rows
// and pushes them to a single render callback whenever either changes.
package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/logging"
	"github.com/firefly-engineering/worldclock/internal/selection"
	"github.com/firefly-engineering/worldclock/internal/zonefmt"
)

// Row is one rendered zone.
type Row struct {
	Descriptor catalog.Descriptor
	Time       string
	Date       string
	Offset     string
}

// Source is the instant feed a Board listens to.
type Source interface {
	Current() time.Time
	Subscribe(func(time.Time)) (unsubscribe func())
}

// RenderFunc receives the full row list for every change. Calls never
// overlap.
type RenderFunc func(instant time.Time, rows []Row)

// Board connects an instant source and a selection set to a RenderFunc.
type Board struct {
	selection *selection.Set
	source    Source
	onRender  RenderFunc

	mu      sync.Mutex
	instant time.Time
	detach  []func()

	// renderMu serializes renders and guards attached.
	renderMu sync.Mutex
	attached bool
}

// New creates a Board. Nothing is rendered until Attach.
func New(sel *selection.Set, src Source, onRender RenderFunc) *Board {
	return &Board{
		selection: sel,
		source:    src,
		onRender:  onRender,
		instant:   src.Current(),
	}
}

// Rows renders the given descriptors at instant. Any failure aborts the
// whole list so callers never see a partial display.
func Rows(instant time.Time, descs []catalog.Descriptor) ([]Row, error) {
	rows := make([]Row, 0, len(descs))
	for _, d := range descs {
		timeText, dateText, err := zonefmt.Render(instant, d.Zone)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", d.ID, err)
		}
		offset, err := zonefmt.Offset(instant, d.Zone)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", d.ID, err)
		}
		rows = append(rows, Row{
			Descriptor: d,
			Time:       timeText,
			Date:       dateText,
			Offset:     offset,
		})
	}
	return rows, nil
}

// Rows renders the current selection at instant.
func (b *Board) Rows(instant time.Time) ([]Row, error) {
	return Rows(instant, b.selection.Descriptors())
}

// Attach subscribes to the source and the selection, then renders once so
// the callback starts with the current state.
func (b *Board) Attach() {
	b.renderMu.Lock()
	b.attached = true
	b.renderMu.Unlock()

	b.mu.Lock()
	b.detach = append(b.detach,
		b.source.Subscribe(b.onInstant),
		b.selection.Subscribe(b.onSelection),
	)
	b.mu.Unlock()

	b.render()
}

// Detach removes both subscriptions and waits for a render in progress.
// No render starts after Detach returns, even if the source is still
// delivering an instant it picked up earlier. onRender must not call Detach.
func (b *Board) Detach() {
	b.mu.Lock()
	detach := b.detach
	b.detach = nil
	b.mu.Unlock()

	for _, fn := range detach {
		fn()
	}

	b.renderMu.Lock()
	b.attached = false
	b.renderMu.Unlock()
}

func (b *Board) onInstant(now time.Time) {
	b.mu.Lock()
	b.instant = now
	b.mu.Unlock()
	b.render()
}

func (b *Board) onSelection([]string) {
	b.render()
}

// render reads the instant and the selection while holding renderMu, so
// the last render to run always shows the latest of both.
func (b *Board) render() {
	b.renderMu.Lock()
	defer b.renderMu.Unlock()

	if !b.attached {
		return
	}

	b.mu.Lock()
	instant := b.instant
	b.mu.Unlock()

	rows, err := b.Rows(instant)
	if err != nil {
		logging.Error("render skipped", "error", err)
		return
	}
	b.onRender(instant, rows)
}

// Package selection tracks which catalog zones are on display.
//
// A Set is ordered (new ids go last) and never empty: toggling the only
// remaining id does nothing.
package selection

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/errors"
	"github.com/firefly-engineering/worldclock/internal/logging"
)

// Set is the ordered, unique set of selected descriptor ids.
type Set struct {
	catalog *catalog.Catalog

	mu   sync.RWMutex
	ids  []string
	subs []subscriber
	next int
}

type subscriber struct {
	id int
	fn func([]string)
}

// New creates a set holding defaults, in that order.
func New(cat *catalog.Catalog, defaults []string) (*Set, error) {
	if len(defaults) == 0 {
		return nil, errors.ValidationError("selection needs at least one zone")
	}
	for _, id := range defaults {
		if !cat.Has(id) {
			return nil, errors.UnknownTimezoneError(id)
		}
	}
	if dups := lo.FindDuplicates(defaults); len(dups) > 0 {
		return nil, errors.ValidationError(fmt.Sprintf("zone %q selected more than once", dups[0]))
	}

	return &Set{
		catalog: cat,
		ids:     append([]string(nil), defaults...),
	}, nil
}

// NewDefault creates a set from the catalog's default selection.
func NewDefault(cat *catalog.Catalog) (*Set, error) {
	return New(cat, cat.DefaultSelection())
}

// Toggle adds id at the end if absent and removes it if present, unless it
// is the only selected id. Ids outside the catalog are rejected without
// touching the set.
func (s *Set) Toggle(id string) error {
	if !s.catalog.Has(id) {
		return errors.UnknownTimezoneError(id)
	}

	s.mu.Lock()
	switch i := lo.IndexOf(s.ids, id); {
	case i < 0:
		s.ids = append(s.ids, id)
	case len(s.ids) == 1:
		s.mu.Unlock()
		logging.Debug("toggle ignored, last selected zone", "id", id)
		return nil
	default:
		s.ids = lo.Without(s.ids, id)
	}
	snapshot := append([]string(nil), s.ids...)
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	logging.Debug("selection changed", "id", id, "selection", snapshot)
	for _, sub := range subs {
		sub.fn(append([]string(nil), snapshot...))
	}
	return nil
}

// IDs returns a copy of the selected ids in display order.
func (s *Set) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.ids...)
}

// Descriptors returns the selected descriptors in display order.
func (s *Set) Descriptors() []catalog.Descriptor {
	ids := s.IDs()
	out := make([]catalog.Descriptor, 0, len(ids))
	for _, id := range ids {
		// Membership is checked on every insert.
		d, _ := s.catalog.Lookup(id)
		out = append(out, d)
	}
	return out
}

// Contains reports whether id is selected.
func (s *Set) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Contains(s.ids, id)
}

// Len returns the number of selected ids; it is always at least one.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Catalog returns the catalog the set draws from.
func (s *Set) Catalog() *catalog.Catalog {
	return s.catalog
}

// Subscribe registers fn to receive the new selection after every change.
// Callbacks run synchronously on the goroutine that called Toggle.
func (s *Set) Subscribe(fn func([]string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	id := s.next
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = lo.Reject(s.subs, func(sub subscriber, _ int) bool { return sub.id == id })
		})
	}
}

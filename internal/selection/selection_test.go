package selection

import (
	"reflect"
	"testing"

	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/errors"
)

func newSet(t *testing.T, ids ...string) *Set {
	t.Helper()
	s, err := New(catalog.Default(), ids)
	if err != nil {
		t.Fatalf("New(%v) error: %v", ids, err)
	}
	return s
}

func TestNew(t *testing.T) {
	cat := catalog.Default()

	t.Run("default selection", func(t *testing.T) {
		s, err := NewDefault(cat)
		if err != nil {
			t.Fatalf("NewDefault() error: %v", err)
		}
		if want := []string{"local", "new_york", "london"}; !reflect.DeepEqual(s.IDs(), want) {
			t.Errorf("IDs() = %v, want %v", s.IDs(), want)
		}
	})

	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{"empty", nil, nil},
		{"unknown id", []string{"local", "atlantis"}, errors.ErrUnknownTimezone},
		{"duplicate", []string{"local", "local"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(cat, tt.ids)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		id    string
		want  []string
	}{
		{"remove keeps order", []string{"local", "new_york", "london"}, "new_york", []string{"local", "london"}},
		{"remove first", []string{"local", "new_york", "london"}, "local", []string{"new_york", "london"}},
		{"remove last", []string{"local", "new_york", "london"}, "london", []string{"local", "new_york"}},
		{"append at end", []string{"local", "london"}, "tokyo", []string{"local", "london", "tokyo"}},
		{"append after reorder", []string{"tokyo", "local"}, "new_york", []string{"tokyo", "local", "new_york"}},
		{"floor keeps only member", []string{"london"}, "london", []string{"london"}},
		{"single member accepts new", []string{"london"}, "local", []string{"london", "local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSet(t, tt.start...)
			if err := s.Toggle(tt.id); err != nil {
				t.Fatalf("Toggle(%q) error: %v", tt.id, err)
			}
			if got := s.IDs(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleSizeChanges(t *testing.T) {
	cat := catalog.Default()

	for _, id := range cat.IDs() {
		t.Run(id, func(t *testing.T) {
			s := newSet(t, cat.DefaultSelection()...)
			before := s.IDs()

			if err := s.Toggle(id); err != nil {
				t.Fatalf("Toggle(%q) error: %v", id, err)
			}
			after := s.IDs()

			if contains(before, id) {
				if len(after) != len(before)-1 {
					t.Errorf("removing %q: len %d -> %d", id, len(before), len(after))
				}
				var rest []string
				for _, b := range before {
					if b != id {
						rest = append(rest, b)
					}
				}
				if !reflect.DeepEqual(after, rest) {
					t.Errorf("removing %q: got %v, want %v", id, after, rest)
				}
			} else {
				if len(after) != len(before)+1 {
					t.Errorf("adding %q: len %d -> %d", id, len(before), len(after))
				}
				if after[len(after)-1] != id {
					t.Errorf("adding %q: last = %q", id, after[len(after)-1])
				}
			}
		})
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	cat := catalog.Default()
	start := []string{"local", "new_york", "london"}

	for _, id := range cat.IDs() {
		t.Run(id, func(t *testing.T) {
			s := newSet(t, start...)
			if err := s.Toggle(id); err != nil {
				t.Fatalf("Toggle() error: %v", err)
			}
			if err := s.Toggle(id); err != nil {
				t.Fatalf("Toggle() error: %v", err)
			}

			// Removing then re-adding moves an id to the end, so only
			// absent ids and the last id restore the exact order.
			got := s.IDs()
			if !contains(start, id) || id == start[len(start)-1] {
				if !reflect.DeepEqual(got, start) {
					t.Errorf("IDs() = %v, want %v", got, start)
				}
			} else if len(got) != len(start) {
				t.Errorf("len = %d, want %d", len(got), len(start))
			}
		})
	}
}

func TestToggleUnknown(t *testing.T) {
	s := newSet(t, "local", "london")
	notified := 0
	s.Subscribe(func([]string) { notified++ })

	err := s.Toggle("atlantis")
	if !errors.Is(err, errors.ErrUnknownTimezone) {
		t.Errorf("Toggle(atlantis) error = %v, want ErrUnknownTimezone", err)
	}
	if want := []string{"local", "london"}; !reflect.DeepEqual(s.IDs(), want) {
		t.Errorf("IDs() = %v, want %v", s.IDs(), want)
	}
	if notified != 0 {
		t.Errorf("subscribers notified %d times, want 0", notified)
	}
}

func TestSubscribe(t *testing.T) {
	s := newSet(t, "local", "new_york", "london")

	var got [][]string
	unsubscribe := s.Subscribe(func(ids []string) { got = append(got, ids) })

	_ = s.Toggle("new_york")
	_ = s.Toggle("tokyo")

	want := [][]string{
		{"local", "london"},
		{"local", "london", "tokyo"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}

	t.Run("no-op toggle does not notify", func(t *testing.T) {
		single := newSet(t, "london")
		calls := 0
		single.Subscribe(func([]string) { calls++ })
		_ = single.Toggle("london")
		if calls != 0 {
			t.Errorf("calls = %d, want 0", calls)
		}
	})

	t.Run("callback receives a copy", func(t *testing.T) {
		got[1][0] = "mutated"
		if s.IDs()[0] != "local" {
			t.Error("subscriber mutation leaked into the set")
		}
	})

	t.Run("unsubscribe", func(t *testing.T) {
		unsubscribe()
		unsubscribe()
		_ = s.Toggle("tokyo")
		if len(got) != 2 {
			t.Errorf("notifications after unsubscribe = %d, want 2", len(got))
		}
	})
}

func TestQueries(t *testing.T) {
	s := newSet(t, "tokyo", "local")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains("tokyo") || s.Contains("london") {
		t.Error("Contains() mismatch")
	}

	descs := s.Descriptors()
	if len(descs) != 2 || descs[0].ID != "tokyo" || descs[1].ID != "local" {
		t.Errorf("Descriptors() = %+v", descs)
	}
	if descs[0].Zone != "Asia/Tokyo" {
		t.Errorf("Descriptors()[0].Zone = %q", descs[0].Zone)
	}
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

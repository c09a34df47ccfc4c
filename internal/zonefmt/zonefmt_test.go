package zonefmt

import (
	"testing"
	"time"

	"github.com/firefly-engineering/worldclock/internal/catalog"
	"github.com/firefly-engineering/worldclock/internal/errors"
)

var summer = time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		zone     string
		wantTime string
		wantDate string
	}{
		{"new york daylight time", summer, "America/New_York", "08:00:00", "Monday, July 1, 2024"},
		{"london summer time", summer, "Europe/London", "13:00:00", "Monday, July 1, 2024"},
		{"tokyo no dst", summer, "Asia/Tokyo", "21:00:00", "Monday, July 1, 2024"},
		{"kolkata half hour", summer, "Asia/Kolkata", "17:30:00", "Monday, July 1, 2024"},
		{"sydney next day", time.Date(2024, time.July, 1, 20, 0, 0, 0, time.UTC), "Australia/Sydney", "06:00:00", "Tuesday, July 2, 2024"},
		{"new york standard time", time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), "America/New_York", "07:00:00", "Monday, January 15, 2024"},
		{"london winter", time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), "Europe/London", "12:00:00", "Monday, January 15, 2024"},
		{"los angeles previous day", time.Date(2024, time.March, 1, 3, 30, 15, 0, time.UTC), "America/Los_Angeles", "19:30:15", "Thursday, February 29, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTime, gotDate, err := Render(tt.instant, tt.zone)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if gotTime != tt.wantTime {
				t.Errorf("time = %q, want %q", gotTime, tt.wantTime)
			}
			if gotDate != tt.wantDate {
				t.Errorf("date = %q, want %q", gotDate, tt.wantDate)
			}
		})
	}
}

func TestRenderAcrossDSTTransition(t *testing.T) {
	// US clocks sprang forward at 2024-03-10 07:00 UTC.
	before := time.Date(2024, time.March, 10, 6, 59, 59, 0, time.UTC)
	after := before.Add(time.Second)

	gotBefore, _, err := Render(before, "America/New_York")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	gotAfter, _, _ := Render(after, "America/New_York")

	if gotBefore != "01:59:59" {
		t.Errorf("before = %q, want 01:59:59", gotBefore)
	}
	if gotAfter != "03:00:00" {
		t.Errorf("after = %q, want 03:00:00", gotAfter)
	}
}

func TestRenderDeterministic(t *testing.T) {
	instants := []time.Time{
		summer,
		time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Unix(0, 0),
		time.Date(2038, time.January, 19, 3, 14, 8, 0, time.UTC),
	}

	for _, zone := range catalog.Default().Zones() {
		for _, instant := range instants {
			t1, d1, err := Render(instant, zone)
			if err != nil {
				t.Fatalf("Render(%v, %q) error: %v", instant, zone, err)
			}
			for i := 0; i < 3; i++ {
				t2, d2, _ := Render(instant, zone)
				if t1 != t2 || d1 != d2 {
					t.Errorf("Render(%v, %q) not deterministic: (%q, %q) vs (%q, %q)", instant, zone, t1, d1, t2, d2)
				}
			}
		}
	}
}

func TestRenderIgnoresInstantLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	a, _, _ := Render(summer, "Europe/London")
	b, _, _ := Render(summer.In(tokyo), "Europe/London")
	if a != b {
		t.Errorf("Render depends on the instant's location: %q vs %q", a, b)
	}
}

func TestRenderLocal(t *testing.T) {
	gotTime, gotDate, err := Render(summer, "local")
	if err != nil {
		t.Fatalf("Render(local) error: %v", err)
	}

	want := summer.In(time.Local)
	if gotTime != want.Format(TimeLayout) {
		t.Errorf("time = %q, want %q", gotTime, want.Format(TimeLayout))
	}
	if gotDate == "" {
		t.Error("date should not be empty")
	}
}

func TestRenderInvalidZone(t *testing.T) {
	zones := []string{"", "   ", "Mars/Olympus_Mons", "not a zone", " Europe/London", "../../etc/passwd"}

	for _, zone := range zones {
		t.Run(zone, func(t *testing.T) {
			gotTime, gotDate, err := Render(summer, zone)
			if !errors.Is(err, errors.ErrInvalidZone) {
				t.Fatalf("Render(%q) error = %v, want ErrInvalidZone", zone, err)
			}
			if gotTime != "" || gotDate != "" {
				t.Errorf("Render(%q) should not return text on error, got (%q, %q)", zone, gotTime, gotDate)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{"America/New_York", "UTC-04:00"},
		{"Europe/London", "UTC+01:00"},
		{"Asia/Kolkata", "UTC+05:30"},
		{"UTC", "UTC+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			got, err := Offset(summer, tt.zone)
			if err != nil {
				t.Fatalf("Offset() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Offset(%q) = %q, want %q", tt.zone, got, tt.want)
			}
		})
	}

	if _, err := Offset(summer, "Nowhere/Land"); !errors.Is(err, errors.ErrInvalidZone) {
		t.Errorf("Offset(Nowhere/Land) error = %v, want ErrInvalidZone", err)
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "UTC+00:00"},
		{-4 * 3600, "UTC-04:00"},
		{5*3600 + 45*60, "UTC+05:45"},
		{-(3*3600 + 30*60), "UTC-03:30"},
	}

	for _, tt := range tests {
		if got := FormatOffset(tt.seconds); got != tt.want {
			t.Errorf("FormatOffset(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check(catalog.Default().Zones()...); err != nil {
		t.Errorf("Check(default catalog) error: %v", err)
	}
	if err := Check("UTC", "Bogus/Zone"); !errors.Is(err, errors.ErrInvalidZone) {
		t.Errorf("Check() error = %v, want ErrInvalidZone", err)
	}
}

func TestResolveCompiledInZones(t *testing.T) {
	// Zones outside the built-in catalog resolve too, from the embedded
	// database when the host has none.
	for _, zone := range []string{"Antarctica/Troll", "Pacific/Chatham", "Asia/Kathmandu", "America/St_Johns"} {
		t.Run(zone, func(t *testing.T) {
			loc, err := Resolve(zone)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", zone, err)
			}
			if loc.String() != zone {
				t.Errorf("location = %q, want %q", loc.String(), zone)
			}
		})
	}

	got, err := Offset(time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC), "Asia/Kathmandu")
	if err != nil {
		t.Fatalf("Offset() error: %v", err)
	}
	if got != "UTC+05:45" {
		t.Errorf("Offset(Asia/Kathmandu) = %q, want UTC+05:45", got)
	}
}

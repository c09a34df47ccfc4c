// Package zonefmt renders an instant as wall-clock text for a time zone.
//
// Rendering is pure: the same instant and zone identifier always produce the
// same text. The display locale is fixed; nothing is read from the
// environment apart from the host zone behind "local". The IANA database is
// compiled in, so hosts without zoneinfo files still resolve every zone.
package zonefmt

import (
	"fmt"
	"strings"
	"time"
	// Embedded zone database, used when the host has none.
	_ "time/tzdata"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/firefly-engineering/worldclock/internal/errors"
)

// TimeLayout is the 24-hour HH:MM:SS layout used for time text.
const TimeLayout = "15:04:05"

// locationCacheSize bounds the cache; catalogs are far smaller.
const locationCacheSize = 256

// displayLocale formats date text. It is a constant of the program, never
// detected from the environment.
var displayLocale locales.Translator = en.New()

var locations = mustCache()

func mustCache() *lru.Cache[string, *time.Location] {
	c, err := lru.New[string, *time.Location](locationCacheSize)
	if err != nil {
		panic("zonefmt: " + err.Error())
	}
	return c
}

// Resolve maps a zone identifier to a location. "local" (any case) is the
// host zone; anything else must be an IANA name. Unlike time.LoadLocation,
// an empty identifier is rejected instead of meaning UTC.
func Resolve(zone string) (*time.Location, error) {
	if strings.EqualFold(zone, "local") {
		return time.Local, nil
	}
	if strings.TrimSpace(zone) == "" || zone != strings.TrimSpace(zone) {
		return nil, errors.InvalidZoneError(zone, nil)
	}

	if loc, ok := locations.Get(zone); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, errors.InvalidZoneError(zone, err)
	}
	locations.Add(zone, loc)
	return loc, nil
}

// Render returns the time text (HH:MM:SS, 24h) and the full date text of
// instant as seen in zone. Offsets come from the zone database at that
// instant, so daylight saving is applied.
func Render(instant time.Time, zone string) (timeText, dateText string, err error) {
	loc, err := Resolve(zone)
	if err != nil {
		return "", "", err
	}

	t := instant.In(loc)
	return t.Format(TimeLayout), displayLocale.FmtDateFull(t), nil
}

// Offset returns the zone's UTC offset at instant as "UTC±HH:MM".
func Offset(instant time.Time, zone string) (string, error) {
	loc, err := Resolve(zone)
	if err != nil {
		return "", err
	}

	_, offset := instant.In(loc).Zone()
	return FormatOffset(offset), nil
}

// FormatOffset formats an offset in seconds east of UTC.
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// Check resolves every zone and returns the first failure. Callers use it
// to reject a catalog at startup rather than on the first tick.
func Check(zones ...string) error {
	for _, z := range zones {
		if _, err := Resolve(z); err != nil {
			return err
		}
	}
	return nil
}

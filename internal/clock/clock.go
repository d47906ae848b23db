// Package clock resolves dates and times from user input, trying locale-ordered
// pattern lists unless an explicit format override is configured.
package clock

import (
	"strings"
	"time"

	"github.com/evensrud/daybook/internal/apperr"
)

// Named date-format aliases accepted as overrides. Anything else passed as an
// override is treated as a raw Go layout.
var dateAliases = map[string]string{
	"YYYY-MM-DD": "2006-01-02",
	"MM/DD/YYYY": "01/02/2006",
	"DD.MM.YYYY": "02.01.2006",
	"DD/MM/YYYY": "02/01/2006",
	"MM-DD-YYYY": "01-02-2006",
	"DD-MM-YYYY": "02-01-2006",
}

// Ordered candidate layouts per locale family. List order is the only
// ambiguity resolution: the first layout that parses wins.
var (
	dateLayoutsEnglish = []string{
		"2006-01-02",      // ISO: 2025-10-24
		"01/02/2006",      // US: 10/24/2025
		"01-02-2006",      // US with dashes: 10-24-2025
		"January 2, 2006", // US long: October 24, 2025
		"Jan 2, 2006",     // US short: Oct 24, 2025
	}
	dateLayoutsNordic = []string{
		"2006-01-02",     // ISO: 2025-10-24
		"02.01.2006",     // Norwegian: 24.10.2025
		"02/01/2006",     // European: 24/10/2025
		"02-01-2006",     // European with dashes: 24-10-2025
		"2. January 2006", // long: 24. October 2025
		"2. Jan 2006",    // short: 24. Oct 2025
	}
	dateLayoutsDefault = []string{
		"2006-01-02", // ISO
		"01/02/2006", // US
		"02/01/2006", // European
	}

	timeLayouts12h = []string{
		"3:04 PM",
		"3:04:05 PM",
		"3:04PM",
		"3:04:05PM",
		"3:04 pm",
		"3:04:05 pm",
		"3:04pm",
		"3:04:05pm",
	}
	timeLayouts24h = []string{
		"15:04",
		"15:04:05",
	}
)

// Resolver parses and formats dates and times for one vault locale.
type Resolver struct {
	Locale string

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// New creates a Resolver for the given locale tag (e.g. "en-US", "nb-NO").
func New(locale string) *Resolver {
	return &Resolver{Locale: locale, now: time.Now}
}

// nordic reports whether the locale belongs to the Nordic pattern family.
func (r *Resolver) nordic() bool {
	for _, p := range []string{"no", "nb", "nn", "sv", "da", "fi"} {
		if strings.HasPrefix(r.Locale, p) {
			return true
		}
	}
	return false
}

func (r *Resolver) dateLayouts() []string {
	switch {
	case strings.HasPrefix(r.Locale, "en"):
		return dateLayoutsEnglish
	case r.nordic():
		return dateLayoutsNordic
	default:
		return dateLayoutsDefault
	}
}

// ParseDate parses a date string. With a non-empty override the locale lists
// are bypassed entirely: the override (alias or raw Go layout) must match.
func (r *Resolver) ParseDate(s, override string) (time.Time, error) {
	if override != "" {
		layout, ok := dateAliases[override]
		if !ok {
			layout = override
		}
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
		return time.Time{}, &apperr.ParseError{Input: s, Context: "date format override " + override}
	}

	for _, layout := range r.dateLayouts() {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, &apperr.ParseError{Input: s, Context: "locale " + r.Locale}
}

// ParseTime parses a time-of-day string. The override selects a fixed pattern
// set ("12h" or "24h"); any other override value is a configuration error.
// Without an override, 24-hour layouts are tried before 12-hour ones for every
// locale family.
func (r *Resolver) ParseTime(s, override string) (time.Time, error) {
	var layouts []string
	switch override {
	case "":
		layouts = append(append([]string{}, timeLayouts24h...), timeLayouts12h...)
	case "12h":
		layouts = timeLayouts12h
	case "24h":
		layouts = timeLayouts24h
	default:
		return time.Time{}, apperr.Configf("invalid time format override %q: use \"12h\" or \"24h\"", override)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	ctx := "locale " + r.Locale
	if override != "" {
		ctx = "time format override " + override
	}
	return time.Time{}, &apperr.ParseError{Input: s, Context: ctx}
}

// RelativeDate resolves a signed day offset against the current local date.
// Positive offsets go into the past (1 = yesterday), negative into the future.
func (r *Resolver) RelativeDate(daysAgo int) time.Time {
	return r.Today().AddDate(0, 0, -daysAgo)
}

// Today returns the current local date, truncated to midnight.
func (r *Resolver) Today() time.Time {
	n := r.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.Local)
}

// Now returns the current local date-time.
func (r *Resolver) Now() time.Time {
	return r.now()
}

// Combine merges a date and a time-of-day into one local timestamp.
func Combine(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.Local)
}

// FormatDate renders a date in the canonical ISO form used in file names and
// frontmatter.
func FormatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// FormatTime renders a time-of-day as HH:MM:SS, the form used in note rows.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDateTime renders a full date-time, used by template tokens.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

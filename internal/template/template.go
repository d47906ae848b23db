// Package template renders the vault template file used when a note file is
// created for the first time.
package template

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/evensrud/daybook/internal/clock"
)

// Values holds the substitution values for one file creation. All of them are
// computed from the entry's effective timestamp, which may differ from the
// current instant when a past or future date was requested.
type Values struct {
	Date          string
	Time          string
	DateTime      string
	Created       string
	Today         string
	Yesterday     string
	Tomorrow      string
	Weekday       string // full name; the bare lowercase token
	WeekdayShort  string // abbreviated; the capitalized {Weekday} token
	SectionHeader string
}

// ValuesAt computes template values from a timestamp and the configured
// section header.
func ValuesAt(ts time.Time, sectionHeader string) Values {
	return Values{
		Date:          clock.FormatDate(ts),
		Time:          clock.FormatTime(ts),
		DateTime:      clock.FormatDateTime(ts),
		Created:       clock.FormatDateTime(ts),
		Today:         clock.FormatDate(ts),
		Yesterday:     clock.FormatDate(ts.AddDate(0, 0, -1)),
		Tomorrow:      clock.FormatDate(ts.AddDate(0, 0, 1)),
		Weekday:       ts.Format("Monday"),
		WeekdayShort:  ts.Format("Mon"),
		SectionHeader: sectionHeader,
	}
}

// Load reads the template file. A missing or unreadable file is a hard error
// carrying the template path; no partial output is produced.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template file %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes all template tokens, in both doubled {{tok}} and bare
// {tok} forms, and places the rendered note entry: at the note placeholder if
// the template has one, appended at the end otherwise.
func Render(tmpl string, v Values, noteEntry string) string {
	pairs := []struct{ name, value string }{
		{"date", v.Date},
		{"time", v.Time},
		{"datetime", v.DateTime},
		{"created", v.Created},
		{"today", v.Today},
		{"yesterday", v.Yesterday},
		{"tomorrow", v.Tomorrow},
		// The capitalization convention is inverted on purpose: {weekday} is
		// the full name, {Weekday} the abbreviation.
		{"weekday", v.Weekday},
		{"Weekday", v.WeekdayShort},
		{"section_header", v.SectionHeader},
	}

	// Doubled forms listed first so the replacer consumes them whole instead
	// of leaving stray braces around a bare-form match.
	args := make([]string, 0, len(pairs)*4)
	for _, p := range pairs {
		args = append(args, "{{"+p.name+"}}", p.value)
	}
	for _, p := range pairs {
		args = append(args, "{"+p.name+"}", p.value)
	}
	out := strings.NewReplacer(args...).Replace(tmpl)

	if strings.Contains(out, "{{note}}") || strings.Contains(out, "{note}") {
		out = strings.ReplaceAll(out, "{{note}}", noteEntry)
		out = strings.ReplaceAll(out, "{note}", noteEntry)
		return out
	}
	return out + noteEntry
}

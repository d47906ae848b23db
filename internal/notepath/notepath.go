// Package notepath derives a note file path for a given date, either the
// default "<ISO date>.md" or a custom tokenized format string.
package notepath

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/evensrud/daybook/internal/clock"
)

// token is one recognized path-format token with its renderer.
type token struct {
	text   string
	render func(d time.Time) string
}

// tokens is the longest-match lookup table. Matching longest-first makes
// prefix collisions (e.g. {date:02} vs {date}, {{date:y}} vs {date}) a
// non-issue regardless of table order; the sort in init pins it anyway.
var tokens = []token{
	// Compatibility aliases, doubled-brace and bare.
	{"{{date:MM}}", func(d time.Time) string { return d.Format("01") }},
	{"{date:MM}", func(d time.Time) string { return d.Format("01") }},
	{"{{date:y}}", func(d time.Time) string { return d.Format("06") }},
	{"{date:y}", func(d time.Time) string { return d.Format("06") }},

	{"{day:02}", func(d time.Time) string { return d.Format("02") }},
	{"{date:02}", func(d time.Time) string { return d.Format("02") }},
	{"{day}", func(d time.Time) string { return strconv.Itoa(d.Day()) }},
	{"{date}", func(d time.Time) string { return strconv.Itoa(d.Day()) }},

	{"{year}", func(d time.Time) string { return strconv.Itoa(d.Year()) }},
	{"{month:02}", func(d time.Time) string { return d.Format("01") }},
	{"{month}", func(d time.Time) string { return strconv.Itoa(int(d.Month())) }},

	{"{Weekday}", func(d time.Time) string { return d.Format("Monday") }},
	{"{weekday}", func(d time.Time) string { return strings.ToLower(d.Format("Monday")) }},
	{"{Weekday_short}", func(d time.Time) string { return d.Format("Mon") }},
	{"{weekday_short}", func(d time.Time) string { return strings.ToLower(d.Format("Mon")) }},

	{"{Month}", func(d time.Time) string { return d.Format("January") }},
	{"{month_name}", func(d time.Time) string { return strings.ToLower(d.Format("January")) }},
	{"{Month_short}", func(d time.Time) string { return d.Format("Jan") }},
	{"{month_short}", func(d time.Time) string { return strings.ToLower(d.Format("Jan")) }},
}

func init() {
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i].text) > len(tokens[j].text)
	})
}

// Format substitutes date tokens into a custom path-format string in a single
// pass. Unknown tokens are left verbatim; there is no error path.
func Format(format string, date time.Time) string {
	var b strings.Builder
	b.Grow(len(format))

	for i := 0; i < len(format); {
		if format[i] != '{' {
			b.WriteByte(format[i])
			i++
			continue
		}
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(format[i:], tok.text) {
				b.WriteString(tok.render(date))
				i += len(tok.text)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// Rel returns the note file path for a date, relative to the vault root.
// With an empty custom format the default "<ISO date>.md" name is used.
func Rel(customFormat string, date time.Time) string {
	if customFormat == "" {
		return clock.FormatDate(date) + ".md"
	}
	return filepath.FromSlash(Format(customFormat, date))
}

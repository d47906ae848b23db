package notepath

import (
	"path/filepath"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestFormat_Tokens(t *testing.T) {
	d := date(2025, time.March, 5)
	cases := []struct {
		format string
		want   string
	}{
		{"{year}/{month:02}/{day:02}", "2025/03/05"},
		{"{year}-{month}-{day}", "2025-3-5"},
		{"{Weekday}", "Wednesday"},
		{"{weekday}", "wednesday"},
		{"{Weekday_short}", "Wed"},
		{"{weekday_short}", "wed"},
		{"{Month}", "March"},
		{"{month_name}", "march"},
		{"{Month_short}", "Mar"},
		{"{month_short}", "mar"},
		{"{date}", "5"},
		{"{date:02}", "05"},
		{"{date:MM}", "03"},
		{"{{date:MM}}", "03"},
		{"{date:y}", "25"},
		{"{{date:y}}", "25"},
	}
	for _, c := range cases {
		if got := Format(c.format, d); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestFormat_WeekdayShortFriday(t *testing.T) {
	d := date(2025, time.October, 24)
	if got := Format("{Weekday_short}", d); got != "Fri" {
		t.Errorf("got %q, want Fri", got)
	}
}

func TestFormat_UnknownTokensVerbatim(t *testing.T) {
	d := date(2025, time.March, 5)
	cases := []struct {
		format string
		want   string
	}{
		{"{nope}/{year}", "{nope}/2025"},
		{"plain text", "plain text"},
		{"{", "{"},
		{"{year", "{year"},
	}
	for _, c := range cases {
		if got := Format(c.format, d); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestFormat_SinglePass(t *testing.T) {
	// A rendered value must not be rescanned for tokens.
	d := date(2025, time.March, 5)
	if got := Format("{year}{month}", d); got != "20253" {
		t.Errorf("got %q, want 20253", got)
	}
}

func TestRel_Default(t *testing.T) {
	d := date(2025, time.October, 24)
	if got := Rel("", d); got != "2025-10-24.md" {
		t.Errorf("Rel = %q", got)
	}
}

func TestRel_CustomFormat(t *testing.T) {
	d := date(2025, time.October, 24)
	want := filepath.Join("2025", "10", "24.md")
	if got := Rel("{year}/{month:02}/{day:02}.md", d); got != want {
		t.Errorf("Rel = %q, want %q", got, want)
	}
}

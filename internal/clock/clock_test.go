package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/evensrud/daybook/internal/apperr"
)

func fixed(r *Resolver, t time.Time) *Resolver {
	r.now = func() time.Time { return t }
	return r
}

func TestParseDate_LocaleAmbiguity(t *testing.T) {
	// 01/02/2025 means January 2 in US order, February 1 in European order.
	us, err := New("en-US").ParseDate("01/02/2025", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(us); got != "2025-01-02" {
		t.Errorf("en-US 01/02/2025 = %s, want 2025-01-02", got)
	}

	no, err := New("nb-NO").ParseDate("01/02/2025", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(no); got != "2025-02-01" {
		t.Errorf("nb-NO 01/02/2025 = %s, want 2025-02-01", got)
	}
}

func TestParseDate_ISOAlwaysFirst(t *testing.T) {
	for _, locale := range []string{"en-US", "nb-NO", "sv-SE", "de-DE"} {
		d, err := New(locale).ParseDate("2025-10-24", "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", locale, err)
		}
		if got := FormatDate(d); got != "2025-10-24" {
			t.Errorf("%s: got %s, want 2025-10-24", locale, got)
		}
	}
}

func TestParseDate_NordicFormats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"24.10.2025", "2025-10-24"},
		{"24/10/2025", "2025-10-24"},
		{"24-10-2025", "2025-10-24"},
		{"24. October 2025", "2025-10-24"},
		{"24. Oct 2025", "2025-10-24"},
	}
	r := New("nb-NO")
	for _, c := range cases {
		d, err := r.ParseDate(c.in, "")
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", c.in, err)
			continue
		}
		if got := FormatDate(d); got != c.want {
			t.Errorf("ParseDate(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseDate_EnglishLongForms(t *testing.T) {
	r := New("en-US")
	for _, in := range []string{"October 24, 2025", "Oct 24, 2025", "10-24-2025"} {
		d, err := r.ParseDate(in, "")
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", in, err)
			continue
		}
		if got := FormatDate(d); got != "2025-10-24" {
			t.Errorf("ParseDate(%q) = %s, want 2025-10-24", in, got)
		}
	}
}

func TestParseDate_OverrideBypassesLocale(t *testing.T) {
	// DD.MM.YYYY is not in the English list, but the override makes it the
	// only accepted layout.
	d, err := New("en-US").ParseDate("24.10.2025", "DD.MM.YYYY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(d); got != "2025-10-24" {
		t.Errorf("got %s, want 2025-10-24", got)
	}

	// With an override, otherwise-valid locale forms no longer parse.
	if _, err := New("en-US").ParseDate("10/24/2025", "YYYY-MM-DD"); err == nil {
		t.Error("expected error for US date under YYYY-MM-DD override")
	}
}

func TestParseDate_OverrideRawLayout(t *testing.T) {
	d, err := New("en-US").ParseDate("2025 10 24", "2006 01 02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(d); got != "2025-10-24" {
		t.Errorf("got %s, want 2025-10-24", got)
	}
}

func TestParseDate_ErrorDetails(t *testing.T) {
	_, err := New("en-US").ParseDate("not a date", "")
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *apperr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *apperr.ParseError", err)
	}
	if pe.Input != "not a date" {
		t.Errorf("Input = %q", pe.Input)
	}
	if pe.Context != "locale en-US" {
		t.Errorf("Context = %q", pe.Context)
	}
}

func TestParseTime_DefaultTriesBothSets(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:30", "14:30:00"},
		{"14:30:45", "14:30:45"},
		{"2:30 PM", "14:30:00"},
		{"2:30pm", "14:30:00"},
		{"2:30:45 PM", "14:30:45"},
	}
	r := New("en-US")
	for _, c := range cases {
		tod, err := r.ParseTime(c.in, "")
		if err != nil {
			t.Errorf("ParseTime(%q) error: %v", c.in, err)
			continue
		}
		if got := FormatTime(tod); got != c.want {
			t.Errorf("ParseTime(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseTime_OverrideRestrictsSet(t *testing.T) {
	r := New("en-US")
	if _, err := r.ParseTime("14:30", "12h"); err == nil {
		t.Error("expected error parsing 24h input under 12h override")
	}
	if _, err := r.ParseTime("2:30 PM", "24h"); err == nil {
		t.Error("expected error parsing 12h input under 24h override")
	}
	tod, err := r.ParseTime("2:30 PM", "12h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatTime(tod); got != "14:30:00" {
		t.Errorf("got %s, want 14:30:00", got)
	}
}

func TestParseTime_UnknownOverrideIsConfigError(t *testing.T) {
	_, err := New("en-US").ParseTime("14:30", "13h")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *apperr.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *apperr.ConfigError", err)
	}
}

func TestRelativeDate_SignConvention(t *testing.T) {
	base := time.Date(2025, 10, 24, 13, 15, 0, 0, time.Local)
	r := fixed(New("en-US"), base)

	cases := []struct {
		offset int
		want   string
	}{
		{0, "2025-10-24"},
		{1, "2025-10-23"},  // positive reaches into the past
		{-1, "2025-10-25"}, // negative into the future
		{7, "2025-10-17"},
	}
	for _, c := range cases {
		if got := FormatDate(r.RelativeDate(c.offset)); got != c.want {
			t.Errorf("RelativeDate(%d) = %s, want %s", c.offset, got, c.want)
		}
	}
}

func TestToday_TruncatesToMidnight(t *testing.T) {
	base := time.Date(2025, 10, 24, 23, 59, 59, 0, time.Local)
	r := fixed(New("en-US"), base)
	today := r.Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("Today() = %v, want midnight", today)
	}
	if FormatDate(today) != "2025-10-24" {
		t.Errorf("Today() date = %s", FormatDate(today))
	}
}

func TestCombine(t *testing.T) {
	date := time.Date(2025, 10, 24, 0, 0, 0, 0, time.Local)
	tod := time.Date(0, 1, 1, 13, 15, 42, 0, time.UTC)
	got := Combine(date, tod)
	if FormatDateTime(got) != "2025-10-24 13:15:42" {
		t.Errorf("Combine = %s", FormatDateTime(got))
	}
}

package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testValues() Values {
	ts := time.Date(2025, 10, 24, 13, 15, 42, 0, time.Local) // a Friday
	return ValuesAt(ts, "Journal")
}

func TestValuesAt(t *testing.T) {
	v := testValues()
	if v.Date != "2025-10-24" || v.Today != "2025-10-24" {
		t.Errorf("Date = %q, Today = %q", v.Date, v.Today)
	}
	if v.Yesterday != "2025-10-23" || v.Tomorrow != "2025-10-25" {
		t.Errorf("Yesterday = %q, Tomorrow = %q", v.Yesterday, v.Tomorrow)
	}
	if v.Time != "13:15:42" {
		t.Errorf("Time = %q", v.Time)
	}
	if v.DateTime != "2025-10-24 13:15:42" || v.Created != v.DateTime {
		t.Errorf("DateTime = %q, Created = %q", v.DateTime, v.Created)
	}
	if v.Weekday != "Friday" || v.WeekdayShort != "Fri" {
		t.Errorf("Weekday = %q, WeekdayShort = %q", v.Weekday, v.WeekdayShort)
	}
}

func TestRender_BothBraceForms(t *testing.T) {
	got := Render("{{date}} and {date}", testValues(), "")
	if got != "2025-10-24 and 2025-10-24" {
		t.Errorf("got %q", got)
	}
}

func TestRender_WeekdayCapitalizationInverted(t *testing.T) {
	got := Render("{weekday}/{Weekday}", testValues(), "")
	if got != "Friday/Fri" {
		t.Errorf("got %q, want Friday/Fri", got)
	}
}

func TestRender_AllTokens(t *testing.T) {
	tmpl := "# {date}\ncreated: {created}\nat {time} on {datetime}\n" +
		"{yesterday} < {today} < {tomorrow}\n## {section_header}\n"
	got := Render(tmpl, testValues(), "")
	if strings.Contains(got, "{") {
		t.Errorf("unsubstituted token remains: %q", got)
	}
	if !strings.Contains(got, "## Journal") {
		t.Errorf("section header missing: %q", got)
	}
}

func TestRender_NotePlaceholder(t *testing.T) {
	got := Render("before\n{note}\nafter", testValues(), "- 13:15:42 lunch")
	want := "before\n- 13:15:42 lunch\nafter"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = Render("before\n{{note}}\nafter", testValues(), "- 13:15:42 lunch")
	if got != want {
		t.Errorf("doubled form: got %q, want %q", got, want)
	}
}

func TestRender_NoPlaceholderAppends(t *testing.T) {
	got := Render("# Day\n", testValues(), "- 13:15:42 lunch")
	if got != "# Day\n- 13:15:42 lunch" {
		t.Errorf("got %q", got)
	}
}

func TestRender_UnknownTokensKept(t *testing.T) {
	got := Render("{unknown} stays", testValues(), "")
	if got != "{unknown} stays" {
		t.Errorf("got %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daily.md")
	if err := os.WriteFile(path, []byte("# {date}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "# {date}\n" {
		t.Errorf("got %q", got)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.md")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not mention the template path", err)
	}
}

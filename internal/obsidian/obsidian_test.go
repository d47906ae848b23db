package obsidian

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, ".obsidian")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "daily-notes.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertMomentFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"YYYY-MM-DD", "{year}-{month:02}-{day:02}"},
		{"YYYY/MM/DD", "{year}/{month:02}/{day:02}"},
		{"MMMM D, YYYY", "{Month} {day}, {year}"},
		{"MMM DD", "{Month_short} {day:02}"},
		{"dddd", "{Weekday}"},
		{"ddd", "{Weekday_short}"},
		{"YY-M-D", "{date:y}-{month}-{day}"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := convertMomentFormat(c.in); got != c.want {
			t.Errorf("convertMomentFormat(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDetect_MissingSettingsFile(t *testing.T) {
	s, err := Detect(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (Settings{}) {
		t.Errorf("got %+v, want zero settings", s)
	}
}

func TestDetect_FolderAndFormat(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, `{"folder": "Daily/", "format": "YYYY/MM/DD", "template": "Templates/Daily"}`)

	s, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	if s.FilePathFormat != "Daily/{year}/{month:02}/{day:02}.md" {
		t.Errorf("FilePathFormat = %q", s.FilePathFormat)
	}
	want := filepath.Join(root, "Templates", "Daily.md")
	if s.TemplateFile != want {
		t.Errorf("TemplateFile = %q, want %q", s.TemplateFile, want)
	}
}

func TestDetect_DefaultFormatNoFolder(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, `{"format": "YYYY-MM-DD"}`)

	s, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	// Default daily note naming needs no custom path format.
	if s.FilePathFormat != "" {
		t.Errorf("FilePathFormat = %q, want empty", s.FilePathFormat)
	}
}

func TestDetect_FolderWithDefaultFormat(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, `{"folder": "Journal"}`)

	s, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	if s.FilePathFormat != "Journal/{year}-{month:02}-{day:02}.md" {
		t.Errorf("FilePathFormat = %q", s.FilePathFormat)
	}
}

func TestDetect_TemplateKeepsMDExtension(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, `{"template": "Templates/Daily.md"}`)

	s, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "Templates", "Daily.md")
	if s.TemplateFile != want {
		t.Errorf("TemplateFile = %q, want %q", s.TemplateFile, want)
	}
}

func TestDetect_InvalidJSON(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, `{not json`)
	if _, err := Detect(root); err == nil {
		t.Error("expected error for malformed settings")
	}
}

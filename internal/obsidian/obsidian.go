// Package obsidian detects Daily Notes plugin settings in an existing
// Obsidian vault and derives daybook vault settings from them.
package obsidian

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// settingsFile is the Daily Notes core plugin settings file, relative to the
// vault root.
const settingsFile = ".obsidian/daily-notes.json"

// dailyNotesSettings mirrors the plugin's JSON settings document.
type dailyNotesSettings struct {
	Folder   string `json:"folder"`
	Format   string `json:"format"`
	Template string `json:"template"`
}

// Settings is the daybook-side result of an import.
type Settings struct {
	// FilePathFormat is the daybook path-format string, empty when the vault
	// uses the default daily note name.
	FilePathFormat string
	// TemplateFile is the absolute template path, empty when none is set.
	TemplateFile string
}

// momentTokens maps moment.js date tokens to daybook path tokens, longest
// first so that "MMMM" is never consumed as two "MM".
var momentTokens = []struct{ from, to string }{
	{"YYYY", "{year}"},
	{"MMMM", "{Month}"},
	{"MMM", "{Month_short}"},
	{"dddd", "{Weekday}"},
	{"ddd", "{Weekday_short}"},
	{"YY", "{date:y}"},
	{"MM", "{month:02}"},
	{"DD", "{day:02}"},
	{"M", "{month}"},
	{"D", "{day}"},
}

// Detect reads the Daily Notes settings of the Obsidian vault at root.
// A vault without the settings file yields zero-value Settings, not an error.
func Detect(root string) (Settings, error) {
	data, err := os.ReadFile(filepath.Join(root, settingsFile))
	if os.IsNotExist(err) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read obsidian settings: %w", err)
	}

	var raw dailyNotesSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parse obsidian settings: %w", err)
	}

	var out Settings
	if raw.Format != "" && raw.Format != "YYYY-MM-DD" || raw.Folder != "" {
		format := raw.Format
		if format == "" {
			format = "YYYY-MM-DD"
		}
		rel := convertMomentFormat(format) + ".md"
		if raw.Folder != "" {
			rel = strings.TrimSuffix(raw.Folder, "/") + "/" + rel
		}
		out.FilePathFormat = rel
	}
	if raw.Template != "" {
		t := raw.Template
		if !strings.HasSuffix(t, ".md") {
			t += ".md"
		}
		out.TemplateFile = filepath.Join(root, filepath.FromSlash(t))
	}
	return out, nil
}

// convertMomentFormat rewrites a moment.js format string into daybook path
// tokens in a single pass; unknown characters pass through verbatim.
func convertMomentFormat(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, tok := range momentTokens {
			if strings.HasPrefix(format[i:], tok.from) {
				b.WriteString(tok.to)
				i += len(tok.from)
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

package vault

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/evensrud/daybook/internal/clock"
	"github.com/evensrud/daybook/internal/entry"
	"github.com/evensrud/daybook/internal/notepath"
	"github.com/evensrud/daybook/internal/phrase"
	"github.com/evensrud/daybook/internal/section"
	"github.com/evensrud/daybook/internal/storage"
	"github.com/evensrud/daybook/internal/template"
)

// Store appends and lists timestamped notes in per-day markdown files.
// Every write is a whole-file rewrite; no partial patches.
type Store struct {
	cfg   Config
	clk   *clock.Resolver
	files storage.Provider
}

// NewStore validates the configuration and opens the vault directory.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("vault %s: %w", cfg.Name, err)
	}
	files, err := storage.NewVault(ExpandPath(cfg.Path))
	if err != nil {
		return nil, err
	}
	return &Store{cfg: cfg, clk: clock.New(cfg.Locale), files: files}, nil
}

// Clock returns the vault's date/time resolver.
func (s *Store) Clock() *clock.Resolver { return s.clk }

// Config returns the vault configuration.
func (s *Store) Config() Config { return s.cfg }

// Files exposes the underlying file provider (used by the index and watcher).
func (s *Store) Files() storage.Provider { return s.files }

// NotePath returns the absolute path of the day file for a date.
func (s *Store) NotePath(date time.Time) string {
	return filepath.Join(s.files.Root(), notepath.Rel(s.cfg.FilePathFormat, date))
}

// AddNote appends one note entry for the given timestamp, creating the day
// file when needed and converting existing content to the configured
// representation first.
func (s *Store) AddNote(content string, ts time.Time, category string) error {
	rel := notepath.Rel(s.cfg.FilePathFormat, ts)
	row := entry.Row{
		Time:    clock.FormatTime(ts),
		Content: phrase.Expand(content, s.cfg.Phrases),
	}
	header := s.cfg.HeaderFor(category)
	labels := s.cfg.Labels()
	rep := s.cfg.Rep()

	exists, err := s.files.Exists(rel)
	if err != nil {
		return err
	}
	if !exists {
		text, err := s.createText(row, ts, header, labels, rep)
		if err != nil {
			return err
		}
		return s.files.Write(rel, []byte(text))
	}

	data, err := s.files.Read(rel)
	if err != nil {
		return err
	}
	lines := splitLines(string(data))

	lines = entry.Convert(lines, rep, labels)
	if rep == entry.RepTable {
		lines = entry.CleanupTableGaps(lines)
	}

	if header != "" {
		if sec := section.Locate(lines, header); sec != nil {
			block := s.entryBlock(row, rep, labels, lines[sec.Start:sec.End])
			lines = slices.Insert(lines, sec.ContentEnd, block...)
		} else {
			// Section is absent: create it at end-of-file with one leading
			// blank line and place the entry right after the heading.
			block := s.entryBlock(row, rep, labels, nil)
			lines = append(lines, "", "# "+header, "")
			lines = append(lines, block...)
		}
	} else {
		block := s.entryBlock(row, rep, labels, lines)
		lines = append(lines, block...)
	}

	if rep == entry.RepTable {
		lines = entry.CleanupTableGaps(lines)
	}
	return s.files.Write(rel, []byte(joinLines(lines)))
}

// ListNotes returns the (time, content) rows for a date, scoped to the
// category's section when one applies. A missing file or section is an empty
// result, not an error.
func (s *Store) ListNotes(date time.Time, category string) ([]entry.Row, error) {
	rel := notepath.Rel(s.cfg.FilePathFormat, date)
	exists, err := s.files.Exists(rel)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []entry.Row{}, nil
	}

	data, err := s.files.Read(rel)
	if err != nil {
		return nil, err
	}
	lines := splitLines(string(data))

	scope := lines
	if header := s.cfg.HeaderFor(category); header != "" {
		sec := section.Locate(lines, header)
		if sec == nil {
			return []entry.Row{}, nil
		}
		scope = lines[sec.Start:sec.End]
	}

	labels := s.cfg.Labels()
	rows := []entry.Row{}
	for _, line := range scope {
		r, ok := entry.ParseRow(line)
		if !ok {
			continue
		}
		// Guard against header rows leaking into results, even when the
		// file was written with labels that differ from the configured ones.
		if r.Content == labels.Content || entry.IsHeaderContent(r.Content) {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// createText builds the full text of a brand-new day file.
func (s *Store) createText(row entry.Row, ts time.Time, header string, labels entry.Labels, rep entry.Rep) (string, error) {
	block := s.entryBlock(row, rep, labels, nil)

	if s.cfg.TemplateFile != "" {
		tmpl, err := template.Load(ExpandPath(s.cfg.TemplateFile))
		if err != nil {
			return "", err
		}
		noteText := strings.Join(block, "\n") + "\n"
		return template.Render(tmpl, template.ValuesAt(ts, header), noteText), nil
	}

	lines := []string{"---", "date: " + clock.FormatDate(ts), "---", ""}
	if header != "" {
		lines = append(lines, "# "+header, "")
	}
	lines = append(lines, block...)
	return joinLines(lines), nil
}

// entryBlock renders the lines to insert for one entry: the bare data row,
// prefixed by the two table header lines when the target is table and the
// surrounding scope has no table block yet.
func (s *Store) entryBlock(row entry.Row, rep entry.Rep, labels entry.Labels, scope []string) []string {
	if rep != entry.RepTable {
		return []string{entry.RenderBullet(row)}
	}
	for _, line := range scope {
		switch entry.Classify(line) {
		case entry.KindTableRow, entry.KindTableHeader, entry.KindTableSeparator:
			return []string{entry.RenderTableRow(row)}
		}
	}
	return append(entry.TableHeader(labels), entry.RenderTableRow(row))
}

// splitLines breaks file text into lines without the trailing newline
// artifact; joinLines is its inverse and always ends the file with a newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

package index

import (
	"log/slog"
	"strings"

	"github.com/evensrud/daybook/internal/entry"
	"github.com/evensrud/daybook/internal/storage"
)

// Sync walks the vault and rebuilds the index: every .md file on disk is
// re-parsed and replaced, and files removed from disk are dropped. Day files
// are small enough that full re-parsing beats change tracking.
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List()
	if err != nil {
		return err
	}

	indexed, err := db.AllPaths()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := indexFile(db, m.Path, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	for p := range indexed {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteFile(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// indexFile parses the data rows out of one day file and replaces its index
// entries. Header and separator rows never reach the index because they do
// not match a data-row shape.
func indexFile(db *DB, path string, data []byte) error {
	day := frontmatterDate(data)
	var rows []EntryRow
	for _, line := range strings.Split(string(data), "\n") {
		r, ok := entry.ParseRow(line)
		if !ok || entry.IsHeaderContent(r.Content) {
			continue
		}
		rows = append(rows, EntryRow{FilePath: path, Day: day, Time: r.Time, Content: r.Content})
	}
	return db.ReplaceFile(path, rows)
}

// frontmatterDate extracts the "date:" value from a leading frontmatter
// block, or empty when the file has none.
func frontmatterDate(data []byte) string {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return ""
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "---" {
			return ""
		}
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "date:"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

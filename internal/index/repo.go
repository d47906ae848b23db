package index

import "fmt"

// EntryRow is one indexed note entry.
type EntryRow struct {
	FilePath string
	Day      string
	Time     string
	Content  string
}

// SearchResult is one search hit.
type SearchResult struct {
	FilePath string
	Day      string
	Time     string
	Snippet  string
}

// ReplaceFile replaces every indexed entry of one file within a transaction.
// Day files are small, so whole-file replacement beats row diffing.
func (db *DB) ReplaceFile(path string, rows []EntryRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if _, err := tx.Exec(`DELETE FROM entries WHERE file_path = ?`, path); err != nil {
		return fmt.Errorf("index: clear file: %w", err)
	}
	ftsDeleteFile(tx, path)

	if len(rows) > 0 {
		stmt, err := tx.Prepare(`INSERT INTO entries (file_path, day, entry_time, content, position) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare insert: %w", err)
		}
		defer stmt.Close()
		for i, r := range rows {
			if _, err := stmt.Exec(path, r.Day, r.Time, r.Content, i); err != nil {
				return fmt.Errorf("index: insert entry: %w", err)
			}
		}
		if err := ftsInsert(tx, path, rows); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteFile removes every indexed entry of one file.
func (db *DB) DeleteFile(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDeleteFile(tx, path)
	_, _ = tx.Exec(`DELETE FROM entries WHERE file_path = ?`, path)

	return tx.Commit()
}

// AllPaths returns every indexed file path.
func (db *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT file_path FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out[p] = struct{}{}
	}
	return out, rows.Err()
}

// EntriesForDay returns the indexed entries of one day, in file order.
func (db *DB) EntriesForDay(day string) ([]EntryRow, error) {
	rows, err := db.conn.Query(`
		SELECT file_path, day, entry_time, content
		FROM entries
		WHERE day = ?
		ORDER BY file_path, position
	`, day)
	if err != nil {
		return nil, fmt.Errorf("index: entries for day: %w", err)
	}
	defer rows.Close()

	var out []EntryRow
	for rows.Next() {
		var r EntryRow
		if err := rows.Scan(&r.FilePath, &r.Day, &r.Time, &r.Content); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evensrud/daybook/internal/storage"
)

func watcherTestEnv(t *testing.T) (string, storage.Provider, *DB) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewVault(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, files, testDB(t)
}

func indexed(t *testing.T, db *DB, path string) bool {
	t.Helper()
	paths, err := db.AllPaths()
	if err != nil {
		t.Fatal(err)
	}
	_, ok := paths[path]
	return ok
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatcher_NewFileIndexed(t *testing.T) {
	dir, files, db := watcherTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, files, discard())
	time.Sleep(100 * time.Millisecond)

	day := "- 09:00:00 standup\n"
	_ = os.WriteFile(filepath.Join(dir, "2025-10-24.md"), []byte(day), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return indexed(t, db, "2025-10-24.md")
	}, "new file not indexed by watcher")
}

func TestWatcher_NewDirWatched(t *testing.T) {
	dir, files, db := watcherTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, files, discard())
	time.Sleep(100 * time.Millisecond)

	subDir := filepath.Join(dir, "2025")
	_ = os.MkdirAll(subDir, 0o755)
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(subDir, "10-24.md"), []byte("- 09:00:00 deep\n"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return indexed(t, db, filepath.Join("2025", "10-24.md"))
	}, "file in new subdir not indexed by watcher")
}

func TestWatcher_DeleteRemovesFromIndex(t *testing.T) {
	dir, files, db := watcherTestEnv(t)

	path := filepath.Join(dir, "2025-10-24.md")
	_ = os.WriteFile(path, []byte("- 09:00:00 standup\n"), 0o644)
	if err := Sync(db, files, discard()); err != nil {
		t.Fatal(err)
	}
	if !indexed(t, db, "2025-10-24.md") {
		t.Fatal("file not indexed after sync")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go Watch(ctx, db, files, discard())
	time.Sleep(100 * time.Millisecond)

	_ = os.Remove(path)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return !indexed(t, db, "2025-10-24.md")
	}, "deleted file still indexed")
}

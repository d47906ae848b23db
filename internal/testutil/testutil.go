// Package testutil provides shared test helpers for setting up vaults and
// index databases.
package testutil

import (
	"os"
	"testing"

	"github.com/evensrud/daybook/internal/index"
	"github.com/evensrud/daybook/internal/storage"
	"github.com/evensrud/daybook/internal/vault"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "daybook-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewVault(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, files
}

// TestStore creates a vault store over a temporary directory using cfg as a
// base; Name, Path, and Locale get defaults when unset.
func TestStore(t *testing.T, cfg vault.Config) *vault.Store {
	t.Helper()
	if cfg.Name == "" {
		cfg.Name = "test"
	}
	if cfg.Path == "" {
		cfg.Path = t.TempDir()
	}
	if cfg.Locale == "" {
		cfg.Locale = "en-US"
	}
	store, err := vault.NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

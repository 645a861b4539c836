package db_test

import (
	"testing"

	"github.com/wakunguma/site/internal/db"
	"github.com/wakunguma/site/internal/testutil"
)

func TestMigrate_CreatesSessionsTable(t *testing.T) {
	conn := testutil.NewTestDB(t)

	var name string
	err := conn.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'sessions'`)
	if err != nil {
		t.Fatalf("sessions table missing: %v", err)
	}

	// Re-running is a no-op once every migration is applied.
	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestVersion(t *testing.T) {
	conn := testutil.NewTestDB(t)

	v, err := db.Version(conn, "sqlite3")
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v != 1 {
		t.Errorf("Version = %d, want 1", v)
	}
	if _, err := db.Version(conn, "oracle"); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	conn := testutil.NewTestDB(t)
	if err := db.Migrate(conn, "oracle"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	if _, err := db.New("oracle", "dsn"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNew_SQLite(t *testing.T) {
	conn, err := db.New("sqlite3", "file:"+t.TempDir()+"/site.db")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
}

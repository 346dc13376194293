package migrator

import (
	"context"
	"io"
	"os"
	"testing"
	"testing/fstest"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/logger"
)

func TestNewProvider_RejectsNilDB(t *testing.T) {
	if _, err := NewProvider(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestRunMigrations_Integration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	log := logger.NewWithWriter(io.Discard, "error")
	db, err := database.NewPool(ctx, url, log)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer db.Close()

	files := fstest.MapFS{
		"00001_smoke.sql": &fstest.MapFile{Data: []byte(
			"-- +goose Up\nCREATE TABLE IF NOT EXISTS migrator_smoke (id int);\n" +
				"-- +goose Down\nDROP TABLE IF EXISTS migrator_smoke;\n",
		)},
	}
	t.Cleanup(func() {
		_, _ = db.DB().ExecContext(ctx, `DROP TABLE IF EXISTS migrator_smoke`)
	})

	// Unversioned so the smoke migration never touches the real goose_db_version table.
	opt := goose.WithDisableVersioning(true)
	if err := RunMigrations(ctx, db.DB(), files, log, opt); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(ctx, db.DB(), files, log, opt); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var exists bool
	if err := db.DB().QueryRowContext(ctx, `SELECT to_regclass('migrator_smoke') IS NOT NULL`).Scan(&exists); err != nil {
		t.Fatalf("query: %v", err)
	}
	if !exists {
		t.Fatal("expected migrator_smoke table")
	}
}

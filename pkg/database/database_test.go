package database

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/ghuser/wardrobe/pkg/logger"
)

// openTestDatabase connects to DATABASE_URL or skips the test.
func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := NewPool(context.Background(), url, logger.NewWithWriter(io.Discard, "error"))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a url", logger.NewWithWriter(io.Discard, "error"))
	if err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func TestPing(t *testing.T) {
	db := openTestDatabase(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestWithTx_ReturnsCallbackError(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT 1`).Scan(&n); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestWithTx_Commits(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `SELECT 1`)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

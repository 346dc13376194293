package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/wardrobe/pkg/logger"
)

// RunMigrations applies all pending goose migrations found at the root of files.
// Each applied migration is logged with its version and duration.
func RunMigrations(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger, opts ...goose.ProviderOption) error {
	provider, err := NewProvider(db, files, opts...)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	for _, r := range results {
		if r.Error != nil {
			log.ErrorContext(ctx, "migration failed",
				"version", r.Source.Version,
				"path", r.Source.Path,
				"error", r.Error,
			)
			continue
		}
		log.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	if len(results) == 0 {
		log.InfoContext(ctx, "no pending migrations")
	}
	return nil
}

// NewProvider returns a postgres goose provider over files.
func NewProvider(db *sql.DB, files fs.FS, opts ...goose.ProviderOption) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return provider, nil
}

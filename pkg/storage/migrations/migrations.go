// Package migrations embeds the SQL schema for every supported store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Up applies the migrations under dir for the given dialect and returns how
// many were applied.
func Up(ctx context.Context, dialect goose.Dialect, db *sql.DB, dir string) (int, error) {
	fsys, err := fs.Sub(files, dir)
	if err != nil {
		return 0, fmt.Errorf("migrations %s: %w", dir, err)
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("init migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	return len(results), nil
}

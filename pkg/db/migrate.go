// pkg/db/migrate.go
package db

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"
)

// RunMigrations applies every SQL file in the provided embedded filesystem
// in lexical order. Files are idempotent (CREATE ... IF NOT EXISTS), so
// running them on every startup is safe; this mirrors applying migrations
// before the server starts serving.
func RunMigrations(ctx context.Context, database *sqlx.DB, migrations embed.FS, dir string) error {
	entries, err := migrations.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrations.ReadFile(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := database.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}
	return nil
}

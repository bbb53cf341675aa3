package dbtest

import (
	"context"
	"fmt"
	"io/fs"
	"slices"

	"github.com/jmoiron/sqlx"
)

// MigrateFS executes every *.sql file of fsys in lexical order. Each file
// runs as a single statement batch.
func MigrateFS(ctx context.Context, db *sqlx.DB, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob: %w", err)
	}

	slices.Sort(names)

	for _, name := range names {
		query, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s): %w", name, err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext(%s): %w", name, err)
		}
	}

	return nil
}

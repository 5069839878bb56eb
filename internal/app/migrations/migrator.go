package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migrator applies versioned SQL files and records them in schema_migrations
type Migrator struct {
	db    *db.PostgresDB
	files fs.FS
	dir   string
}

// NewMigrator creates a migrator over the schema files built into the binary
func NewMigrator(database *db.PostgresDB) *Migrator {
	return &Migrator{db: database, files: embedded, dir: "sql"}
}

// NewMigratorFS creates a migrator reading .sql files from dir in fsys
func NewMigratorFS(database *db.PostgresDB, fsys fs.FS, dir string) *Migrator {
	return &Migrator{db: database, files: fsys, dir: dir}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context, q db.Querier) error {
	_, err := q.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, q db.Querier, version string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Pending lists the migration files in apply order
func (m *Migrator) Pending() ([]string, error) {
	entries, err := fs.ReadDir(m.files, m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies every migration not yet recorded, each in its own
// transaction together with its schema_migrations row. It returns the
// versions it applied.
func (m *Migrator) Migrate(ctx context.Context) ([]string, error) {
	if err := m.db.Read(ctx, func(ctx context.Context, q db.Querier) error {
		return m.ensureMigrationTableExists(ctx, q)
	}); err != nil {
		return nil, err
	}

	names, err := m.Pending()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		version := strings.SplitN(name, "_", 2)[0]

		content, err := fs.ReadFile(m.files, path.Join(m.dir, name))
		if err != nil {
			return applied, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		var ran bool
		err = m.db.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
			done, err := m.isMigrationApplied(ctx, q, version)
			if err != nil || done {
				return err
			}
			if _, err := q.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("migration %s failed: %w", name, err)
			}
			if _, err := q.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, err
		}

		if ran {
			logger.Info().Str("migration", name).Msg("Migration applied")
			applied = append(applied, version)
		} else {
			logger.Debug().Str("migration", name).Msg("Migration already applied, skipping")
		}
	}

	return applied, nil
}

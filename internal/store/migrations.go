package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atomicstack/screen-generator/internal/logging/events"
)

type migration struct {
	Version int
	UpSQL   string
}

var migrations = []migration{
	{
		Version: 1,
		UpSQL: `
CREATE TABLE IF NOT EXISTS settings_meta (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	saved_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	category_id TEXT PRIMARY KEY CHECK(length(category_id) > 0),
	position INTEGER NOT NULL UNIQUE,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS screen_elements (
	category_id TEXT NOT NULL,
	element_id TEXT NOT NULL CHECK(length(element_id) > 0),
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	file_type TEXT NOT NULL CHECK(file_type IN ('kotlin','java','layout_xml')),
	file_name_template TEXT NOT NULL,
	subdirectory TEXT NOT NULL,
	source_set TEXT NOT NULL,
	android_component TEXT NOT NULL CHECK(android_component IN ('activity','fragment','none')),
	PRIMARY KEY(category_id, element_id),
	UNIQUE(category_id, position),
	FOREIGN KEY(category_id) REFERENCES categories(category_id) ON DELETE CASCADE
);
`,
	},
}

func applyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations(version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM schema_migrations WHERE version = ?`, m.Version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx for migration %d: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx, m.UpSQL); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("apply migration %d: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations(version, applied_at) VALUES (?, datetime('now'))`, m.Version); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
		events.Store.Migrate(m.Version)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/screen-generator/internal/model"
)

// SQLiteStore keeps settings in a SQLite database, one row per category and
// per element, ordered by an explicit position column.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Kind() Kind   { return KindSQLite }
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (model.Settings, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM settings_meta WHERE id = 1`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Settings{}, ErrNotFound
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("query settings meta: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT category_id, name FROM categories ORDER BY position`)
	if err != nil {
		return model.Settings{}, fmt.Errorf("query categories: %w", err)
	}
	var settings model.Settings
	index := map[string]int{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			rows.Close() //nolint:errcheck
			return model.Settings{}, fmt.Errorf("scan category: %w", err)
		}
		index[c.ID] = len(settings.Categories)
		settings.Categories = append(settings.Categories, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close() //nolint:errcheck
		return model.Settings{}, fmt.Errorf("iterate categories: %w", err)
	}
	rows.Close() //nolint:errcheck

	rows, err = s.db.QueryContext(ctx, `
SELECT category_id, element_id, name, file_type, file_name_template, subdirectory, source_set, android_component
FROM screen_elements
ORDER BY category_id, position`)
	if err != nil {
		return model.Settings{}, fmt.Errorf("query screen elements: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	for rows.Next() {
		var (
			categoryID, fileType, component string
			e                               model.ScreenElement
		)
		if err := rows.Scan(&categoryID, &e.ID, &e.Name, &fileType, &e.FileNameTemplate, &e.Subdirectory, &e.SourceSet, &component); err != nil {
			return model.Settings{}, fmt.Errorf("scan screen element: %w", err)
		}
		if err := e.FileType.UnmarshalText([]byte(fileType)); err != nil {
			return model.Settings{}, fmt.Errorf("element %q: %w", e.ID, err)
		}
		if err := e.AndroidComponent.UnmarshalText([]byte(component)); err != nil {
			return model.Settings{}, fmt.Errorf("element %q: %w", e.ID, err)
		}
		idx, ok := index[categoryID]
		if !ok {
			return model.Settings{}, fmt.Errorf("element %q references unknown category %q", e.ID, categoryID)
		}
		settings.Categories[idx].AddElement(e)
	}
	if err := rows.Err(); err != nil {
		return model.Settings{}, fmt.Errorf("iterate screen elements: %w", err)
	}
	return settings, nil
}

// Save replaces the stored settings in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, settings model.Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	if err := saveTx(ctx, tx, settings); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	return nil
}

func saveTx(ctx context.Context, tx *sql.Tx, settings model.Settings) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	for ci, c := range settings.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories(category_id, position, name) VALUES (?, ?, ?)`, c.ID, ci, c.Name); err != nil {
			return fmt.Errorf("insert category %q: %w", c.ID, err)
		}
		for ei, e := range c.Elements {
			fileType, err := e.FileType.MarshalText()
			if err != nil {
				return fmt.Errorf("element %q: %w", e.ID, err)
			}
			component, err := e.AndroidComponent.MarshalText()
			if err != nil {
				return fmt.Errorf("element %q: %w", e.ID, err)
			}
			if _, err := tx.ExecContext(ctx, `
INSERT INTO screen_elements(category_id, element_id, position, name, file_type, file_name_template, subdirectory, source_set, android_component)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID, e.ID, ei, e.Name, string(fileType), e.FileNameTemplate, e.Subdirectory, e.SourceSet, string(component),
			); err != nil {
				return fmt.Errorf("insert element %q: %w", e.ID, err)
			}
		}
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO settings_meta(id, saved_at) VALUES (1, ?)
ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at`, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("update settings meta: %w", err)
	}
	return nil
}

// Package store persists model.Settings for the editor host.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/model"
)

var (
	// ErrNotFound is returned by Load when nothing has been stored yet.
	ErrNotFound = errors.New("settings not found")
	// ErrUnknownFormat is returned for unsupported store kinds.
	ErrUnknownFormat = errors.New("unknown store format")
)

// Kind selects a Store implementation.
type Kind string

const (
	KindAuto   Kind = "auto"
	KindJSON   Kind = "json"
	KindTOML   Kind = "toml"
	KindYAML   Kind = "yaml"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// Store loads and saves settings.
type Store interface {
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
	Kind() Kind
	Close() error
}

// ParseKind validates a user supplied store kind.
func ParseKind(value string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(value))); k {
	case "", KindAuto:
		return KindAuto, nil
	case KindJSON, KindTOML, KindYAML, KindSQLite, KindMemory:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// ResolveKind picks a concrete kind for path when kind is KindAuto.
func ResolveKind(kind Kind, path string) Kind {
	if kind != KindAuto && kind != "" {
		return kind
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return KindTOML
	case ".yaml", ".yml":
		return KindYAML
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	default:
		return KindJSON
	}
}

// Open returns the Store for kind at path.
func Open(ctx context.Context, kind Kind, path string) (Store, error) {
	switch resolved := ResolveKind(kind, path); resolved {
	case KindJSON, KindTOML, KindYAML:
		return NewFileStore(path, resolved)
	case KindSQLite:
		return OpenSQLite(ctx, path)
	case KindMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, kind)
	}
}

// LoadOrDefault loads settings, falling back to model.Default when the store
// is empty. Loaded settings are validated.
func LoadOrDefault(ctx context.Context, s Store, path string, newID func() string) (model.Settings, error) {
	if newID == nil {
		newID = uuid.NewString
	}
	loaded, err := s.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		events.Store.LoadDefault(string(s.Kind()), path)
		return model.Default(newID), nil
	}
	if err != nil {
		return model.Settings{}, err
	}
	if err := loaded.Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("invalid stored settings: %w", err)
	}
	events.Store.Load(string(s.Kind()), path, len(loaded.Categories))
	return loaded, nil
}

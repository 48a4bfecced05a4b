package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/screen-generator/internal/model"
)

// tomlDocument carries a version key so an empty configuration still encodes
// to a non-empty file.
type tomlDocument struct {
	Version    int              `toml:"version"`
	Categories []model.Category `toml:"categories"`
}

const tomlVersion = 1

// FileStore keeps settings in a single JSON, TOML or YAML document.
type FileStore struct {
	path string
	kind Kind
}

// NewFileStore returns a file-backed store for KindJSON, KindTOML or KindYAML.
func NewFileStore(path string, kind Kind) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("settings path is required")
	}
	if kind != KindJSON && kind != KindTOML && kind != KindYAML {
		return nil, fmt.Errorf("%w: %q for file store", ErrUnknownFormat, kind)
	}
	return &FileStore{path: path, kind: kind}, nil
}

func (s *FileStore) Kind() Kind   { return s.kind }
func (s *FileStore) Path() string { return s.path }
func (s *FileStore) Close() error { return nil }

func (s *FileStore) Load(ctx context.Context) (model.Settings, error) {
	if err := ctx.Err(); err != nil {
		return model.Settings{}, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.Settings{}, ErrNotFound
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Settings{}, ErrNotFound
	}
	var settings model.Settings
	switch s.kind {
	case KindTOML:
		var doc tomlDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return model.Settings{}, fmt.Errorf("decode toml settings: %w", err)
		}
		if doc.Version > tomlVersion {
			return model.Settings{}, fmt.Errorf("toml settings version %d is newer than %d", doc.Version, tomlVersion)
		}
		settings.Categories = doc.Categories
	case KindYAML:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return model.Settings{}, fmt.Errorf("decode yaml settings: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &settings); err != nil {
			return model.Settings{}, fmt.Errorf("decode json settings: %w", err)
		}
	}
	return settings, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the destination so readers never observe a partial document.
func (s *FileStore) Save(ctx context.Context, settings model.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	switch s.kind {
	case KindTOML:
		doc := tomlDocument{Version: tomlVersion, Categories: settings.Categories}
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("encode toml settings: %w", err)
		}
	case KindYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(settings); err != nil {
			return fmt.Errorf("encode yaml settings: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml settings: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(settings); err != nil {
			return fmt.Errorf("encode json settings: %w", err)
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write temp settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

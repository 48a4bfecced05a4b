package store

import (
	"context"
	"sync"

	"github.com/atomicstack/screen-generator/internal/model"
)

// MemoryStore keeps settings in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	settings *model.Settings
	saves    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith returns a store preloaded with settings.
func NewMemoryStoreWith(settings model.Settings) *MemoryStore {
	dup := settings.Clone()
	return &MemoryStore{settings: &dup}
}

func (s *MemoryStore) Kind() Kind   { return KindMemory }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Load(ctx context.Context) (model.Settings, error) {
	if err := ctx.Err(); err != nil {
		return model.Settings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return model.Settings{}, ErrNotFound
	}
	return s.settings.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, settings model.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dup := settings.Clone()
	s.mu.Lock()
	s.settings = &dup
	s.saves++
	s.mu.Unlock()
	return nil
}

// Saves reports how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandevgo/memobot/pkg/log"
)

// Store persists named JSON documents as files under a data directory.
// All persistence in the application funnels through it.
type Store struct {
	dir string
	mu  sync.RWMutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the named document into def. A missing or unparsable file
// leaves def untouched: the service keeps functioning on an absent or
// corrupted backing document instead of crashing.
func Load[T any](ctx context.Context, s *Store, name string, def T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return load(ctx, s, name, def)
}

func load[T any](ctx context.Context, s *Store, name string, def T) T {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.FromCtx(ctx).Error().Err(err).Str("document", name).Msg("failed to read document")
		}
		return def
	}

	doc := def
	if err := json.Unmarshal(data, &doc); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("document", name).Msg("failed to parse document, using default")
		return def
	}
	return doc
}

// Save replaces the named document in full. The write goes to a temp file
// in the same directory followed by a rename, so readers observe either
// the old or the new content, never a partial write.
func Save[T any](ctx context.Context, s *Store, name string, doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(ctx, s, name, doc)
}

func save[T any](ctx context.Context, s *Store, name string, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace document %s: %w", name, err)
	}
	return nil
}

// Update applies fn to the named document while holding the write lock,
// so concurrent read-modify-write sequences on the same store serialize
// instead of losing appends.
func Update[T any](ctx context.Context, s *Store, name string, def T, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := fn(load(ctx, s, name, def))
	return doc, save(ctx, s, name, doc)
}

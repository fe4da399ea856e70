package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fields/internal/domain"
)

const catalogFile = "catalog.json" // map[string]domain.Record keyed by name

// ErrNotFound is returned when a named record is absent from the catalog.
var ErrNotFound = errors.New("field record not found")

// FieldStore persists the field catalog as JSON on disk.
type FieldStore struct {
	dir string
	mu  sync.Mutex
}

// NewFieldStore returns a catalog store rooted at dir.
func NewFieldStore(dir string) *FieldStore { return &FieldStore{dir: dir} }

func (s *FieldStore) path() string { return filepath.Join(s.dir, catalogFile) }

// Put inserts or replaces a record keyed by its name. Missing IDs and
// timestamps are filled in.
func (s *FieldStore) Put(rec domain.Record) error {
	if rec.Name == "" {
		return fmt.Errorf("field record needs a name")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Record)
	if err := readJSON(s.path(), &m); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	m[rec.Name] = rec
	return writeJSON(s.path(), m, 0o600)
}

// Get looks up a record by name.
func (s *FieldStore) Get(name string) (domain.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Record)
	if err := readJSON(s.path(), &m); err != nil {
		return domain.Record{}, false, fmt.Errorf("load catalog: %w", err)
	}
	rec, ok := m[name]
	return rec, ok, nil
}

// List returns all records ordered by creation time, then name.
func (s *FieldStore) List() ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Record)
	if err := readJSON(s.path(), &m); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	out := make([]domain.Record, 0, len(m))
	for _, rec := range m {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Delete removes a record by name.
func (s *FieldStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Record)
	if err := readJSON(s.path(), &m); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if _, ok := m[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(m, name)
	return writeJSON(s.path(), m, 0o600)
}

// EnsureHome creates the catalog directory if needed.
func EnsureHome(dir string) error {
	return os.MkdirAll(dir, 0o700)
}

// Compile-time assertion that FieldStore implements domain.FieldStore.
var _ domain.FieldStore = (*FieldStore)(nil)

// Package jsondoc persists each record collection as one JSON document on
// disk, mirroring the whole-collection localStorage layout the consoles
// were built against. Writes go to a temp file first and replace the
// document with os.Rename, so a crash mid-write never corrupts the store.
package jsondoc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vafabank/teller_app/internal/core/domain"
	portsrepo "github.com/vafabank/teller_app/internal/core/ports/repositories"
)

// SnapshotStore implements the RecordStore port on top of one JSON file
// per collection under a data directory.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates the data directory if needed and returns a
// store rooted there.
func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &SnapshotStore{dir: dir}, nil
}

var _ portsrepo.RecordStore = (*SnapshotStore)(nil)

func (s *SnapshotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// load decodes one collection document into dest. A missing file is not an
// error: the collection is simply empty.
func (s *SnapshotStore) load(key string, dest any) error {
	f, err := os.Open(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open collection %s: %w", key, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return nil
}

// save replaces one collection document atomically: write a temp file,
// then rename over the final path.
func (s *SnapshotStore) save(key string, records any) error {
	path := s.path(key)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file for collection %s: %w", key, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for collection %s: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) LoadEmployees(_ context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	if err := s.load(portsrepo.CollectionEmployees, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *SnapshotStore) SaveEmployees(_ context.Context, employees []domain.Employee) error {
	return s.save(portsrepo.CollectionEmployees, employees)
}

func (s *SnapshotStore) LoadCustomers(_ context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if err := s.load(portsrepo.CollectionCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *SnapshotStore) SaveCustomers(_ context.Context, customers []domain.Customer) error {
	return s.save(portsrepo.CollectionCustomers, customers)
}

// Package pgsql implements the RecordStore port on PostgreSQL while
// keeping the whole-document discipline: each collection is one JSONB row
// in the collections table, loaded and replaced in full. Upgrading to
// per-record rows would change the atomicity guarantees the services rely
// on, so the adapter deliberately does not do that.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vafabank/teller_app/internal/core/domain"
	portsrepo "github.com/vafabank/teller_app/internal/core/ports/repositories"
)

// CollectionStore implements the RecordStore port on a pgx pool.
type CollectionStore struct {
	db *pgxpool.Pool
}

// NewCollectionStore creates a new PostgreSQL-backed record store.
func NewCollectionStore(db *pgxpool.Pool) *CollectionStore {
	return &CollectionStore{db: db}
}

var _ portsrepo.RecordStore = (*CollectionStore)(nil)

// load reads one collection document into dest. A missing row means an
// empty collection.
func (s *CollectionStore) load(ctx context.Context, key string, dest any) error {
	var raw []byte
	query := `SELECT records FROM collections WHERE key = $1;`
	err := s.db.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to load collection %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return nil
}

// save replaces one collection document wholesale.
func (s *CollectionStore) save(ctx context.Context, key string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	query := `
        INSERT INTO collections (key, records, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET
            records = EXCLUDED.records,
            updated_at = EXCLUDED.updated_at;
    `
	if _, err := s.db.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}

func (s *CollectionStore) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	if err := s.load(ctx, portsrepo.CollectionEmployees, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *CollectionStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	return s.save(ctx, portsrepo.CollectionEmployees, employees)
}

func (s *CollectionStore) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if err := s.load(ctx, portsrepo.CollectionCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CollectionStore) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	return s.save(ctx, portsrepo.CollectionCustomers, customers)
}

package repositories

import (
	"context"

	"github.com/vafabank/teller_app/internal/core/domain"
)

// Collection keys recognised by every RecordStore adapter.
const (
	CollectionEmployees = "employees"
	CollectionCustomers = "customers"
)

// RecordStore is the whole-collection persistence boundary. Every read
// returns a full snapshot of a collection and every write replaces the
// collection wholesale; adapters must not offer per-record updates, since
// the services rely on snapshot-in, snapshot-out semantics for atomicity.
//
// A missing collection loads as an empty slice, not an error.
//
// Adapters are not required to be safe for concurrent read-modify-write
// cycles; callers serialize access through a single-owner handle.
type RecordStore interface {
	LoadEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployees(ctx context.Context, employees []domain.Employee) error

	LoadCustomers(ctx context.Context) ([]domain.Customer, error)
	SaveCustomers(ctx context.Context, customers []domain.Customer) error
}

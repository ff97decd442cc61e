package services

import (
	"context"
	"fmt"

	"github.com/vafabank/teller_app/internal/apperrors"
	"github.com/vafabank/teller_app/internal/core/domain"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
)

// registryService implements the RegistrySvcFacade interface with linear
// scans over a fresh customer snapshot per call.
type registryService struct {
	store *StoreHandle
}

// NewRegistryService creates a new registry service.
func NewRegistryService(store *StoreHandle) portssvc.RegistrySvcFacade {
	return &registryService{store: store}
}

var _ portssvc.RegistrySvcFacade = (*registryService)(nil)

// indexByAccountNumber returns the position of the record holding the
// account number, or -1.
func indexByAccountNumber(customers []domain.Customer, accountNumber string) int {
	for i := range customers {
		if customers[i].AccountNumber == accountNumber {
			return i
		}
	}
	return -1
}

// indexByCustomerID returns the position of the record holding the
// customer ID, or -1.
func indexByCustomerID(customers []domain.Customer, customerID string) int {
	for i := range customers {
		if customers[i].CustomerID == customerID {
			return i
		}
	}
	return -1
}

func (s *registryService) snapshot(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return customers, nil
}

func (s *registryService) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Customer, error) {
	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := indexByAccountNumber(customers, accountNumber)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	found := customers[i]
	return &found, nil
}

func (s *registryService) FindByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := indexByCustomerID(customers, customerID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	found := customers[i]
	return &found, nil
}

func (s *registryService) FindByLoginIdentifier(ctx context.Context, idOrEmail string) (*domain.Customer, error) {
	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].CustomerID == idOrEmail || customers[i].Email == idOrEmail {
			found := customers[i]
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *registryService) IsUniqueIdentity(ctx context.Context, customerID, accountNumber string) (bool, error) {
	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return isUniqueIdentity(customers, customerID, accountNumber), nil
}

// isUniqueIdentity checks both identifiers against an already-loaded
// snapshot, so callers holding the store lock can reuse it.
func isUniqueIdentity(customers []domain.Customer, customerID, accountNumber string) bool {
	for i := range customers {
		if customers[i].CustomerID == customerID || customers[i].AccountNumber == accountNumber {
			return false
		}
	}
	return true
}

package services

import (
	portsrepo "github.com/vafabank/teller_app/internal/core/ports/repositories"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
)

// NewServiceContainer wires every service onto one shared store handle so
// all read-modify-write cycles in the process serialize on the same lock.
func NewServiceContainer(store portsrepo.RecordStore) *portssvc.ServiceContainer {
	handle := NewStoreHandle(store)

	return &portssvc.ServiceContainer{
		Registry:   NewRegistryService(handle),
		Ledger:     NewLedgerService(handle),
		Onboarding: NewOnboardingService(handle),
		Auth:       NewAuthService(handle),
	}
}

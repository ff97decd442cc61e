package services

import (
	"context"

	"github.com/vafabank/teller_app/internal/core/domain"
	"github.com/vafabank/teller_app/internal/dto"
)

// RegistrySvcFacade finds customer records. Every lookup scans a fresh
// collection snapshot; the store is the single source of truth and results
// are never cached across operations.
type RegistrySvcFacade interface {
	// FindByAccountNumber retrieves a customer record by account number.
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Customer, error)

	// FindByCustomerID retrieves a customer record by customer ID.
	FindByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindByLoginIdentifier matches either the customerId or the email.
	FindByLoginIdentifier(ctx context.Context, idOrEmail string) (*domain.Customer, error)

	// IsUniqueIdentity reports whether neither identifier is taken yet.
	// Used only at application-creation time.
	IsUniqueIdentity(ctx context.Context, customerID, accountNumber string) (bool, error)
}

// LedgerSvcFacade applies balance-mutating operations and maintains the
// passbook invariant: every successful operation appends exactly one entry
// per touched account, whose balance snapshot equals the account balance.
type LedgerSvcFacade interface {
	Deposit(ctx context.Context, req dto.DepositRequest) (*domain.Customer, error)
	Withdraw(ctx context.Context, req dto.WithdrawRequest) (*domain.Customer, error)

	// Transfer debits the source and credits the destination as one logical
	// write, returning both updated records.
	Transfer(ctx context.Context, req dto.TransferRequest) (from, to *domain.Customer, err error)
}

// OnboardingSvcFacade covers the account and employee lifecycle outside of
// balance mutations: applications, approvals, staff creation, closure and
// the contact-detail update flow.
type OnboardingSvcFacade interface {
	CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*domain.Customer, error)
	ApproveApplication(ctx context.Context, customerID string) (*domain.Customer, error)
	ListPendingApplications(ctx context.Context) ([]domain.Customer, error)

	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	// ListEmployees returns all employee records except the reserved admin.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	UpdateContactDetails(ctx context.Context, accountNumber string, req dto.UpdateContactRequest) (*domain.Customer, error)
	CloseAccount(ctx context.Context, accountNumber, customerID string) error

	// EnsureAdminSeed creates the bootstrap admin record when the employee
	// collection is empty. Called once at startup.
	EnsureAdminSeed(ctx context.Context) error
}

// AuthSvcFacade resolves login credentials to an actor. Employees are
// checked before customers, so an employee userId wins over a colliding
// customer email.
type AuthSvcFacade interface {
	Login(ctx context.Context, identifier, password string) (*domain.Actor, error)
}

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Registry   RegistrySvcFacade
	Ledger     LedgerSvcFacade
	Onboarding OnboardingSvcFacade
	Auth       AuthSvcFacade
}

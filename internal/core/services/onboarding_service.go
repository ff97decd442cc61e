package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vafabank/teller_app/internal/apperrors"
	"github.com/vafabank/teller_app/internal/core/domain"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/dto"
	"github.com/vafabank/teller_app/internal/middleware"
	"github.com/vafabank/teller_app/internal/utils"
)

// Bootstrap admin record, created when the employee collection is empty.
// The fixed password matches the data format the consoles were shipped
// with; it is a documented legacy policy, not a secret scheme.
var adminSeed = domain.Employee{
	FullName: "Admin User",
	DOB:      "2000-01-01",
	Email:    "admin@vafabank.com",
	UserID:   domain.AdminUserID,
	Password: "vafa_admin00",
}

// onboardingService implements the OnboardingSvcFacade interface.
type onboardingService struct {
	store *StoreHandle
	now   func() time.Time
}

// OnboardingOption is a functional option for configuring the onboarding
// service.
type OnboardingOption func(*onboardingService)

// WithOnboardingClock overrides the clock used to mint customer IDs.
func WithOnboardingClock(now func() time.Time) OnboardingOption {
	return func(s *onboardingService) {
		s.now = now
	}
}

// NewOnboardingService creates a new onboarding service with the provided
// options.
func NewOnboardingService(store *StoreHandle, options ...OnboardingOption) portssvc.OnboardingSvcFacade {
	svc := &onboardingService{
		store: store,
		now:   time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OnboardingSvcFacade = (*onboardingService)(nil)

// validateProfilePayload enforces the account-type-dependent form sections:
// the overseas address travels with NRI applications only, business details
// with Current only, and employment details with the rest.
func validateProfilePayload(req dto.CreateApplicationRequest) error {
	switch req.AccountType {
	case domain.NRI:
		if req.OverseasAddress == "" {
			return fmt.Errorf("%w: overseas address is required for NRI accounts", apperrors.ErrValidation)
		}
		if req.Business != nil {
			return fmt.Errorf("%w: business details do not apply to NRI accounts", apperrors.ErrValidation)
		}
	case domain.Current:
		if req.OverseasAddress != "" {
			return fmt.Errorf("%w: overseas address applies to NRI accounts only", apperrors.ErrValidation)
		}
		if req.Employment != nil {
			return fmt.Errorf("%w: employment details do not apply to Current accounts", apperrors.ErrValidation)
		}
	case domain.Savings, domain.Salary:
		if req.OverseasAddress != "" {
			return fmt.Errorf("%w: overseas address applies to NRI accounts only", apperrors.ErrValidation)
		}
		if req.Business != nil {
			return fmt.Errorf("%w: business details apply to Current accounts only", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	return nil
}

func (s *onboardingService) CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateProfilePayload(req); err != nil {
		return nil, err
	}

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	customerID, accountNumber, err := s.mintIdentity(customers)
	if err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID:      customerID,
		AccountNumber:   accountNumber,
		FullName:        req.FullName,
		Address:         req.Address,
		DOB:             req.DOB,
		MaritalStatus:   req.MaritalStatus,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Telephone:       req.Telephone,
		Nominee:         req.Nominee,
		Currency:        req.Currency,
		AccountType:     req.AccountType,
		Status:          domain.StatusPending,
		OverseasAddress: req.OverseasAddress,
		Balance:         decimal.Zero,
		Transactions:    []domain.TransactionEntry{},
	}
	if req.Employment != nil {
		customer.Employment = &domain.EmploymentDetails{
			Status:        req.Employment.Status,
			OfficeAddress: req.Employment.OfficeAddress,
			Designation:   req.Employment.Designation,
			AnnualIncome:  req.Employment.AnnualIncome,
		}
	}
	if req.Business != nil {
		customer.Business = &domain.BusinessDetails{
			Address:      req.Business.Address,
			Description:  req.Business.Description,
			AnnualIncome: req.Business.AnnualIncome,
		}
	}

	customers = append(customers, customer)
	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Account application submitted",
		slog.String("customer_id", customer.CustomerID),
		slog.String("account_number", customer.AccountNumber),
		slog.String("account_type", string(customer.AccountType)))

	return &customer, nil
}

// mintIdentity generates a customer ID and account number that are unique
// within the given snapshot. The customer ID token is millisecond-based, so
// collisions are resolved by bumping the timestamp.
func (s *onboardingService) mintIdentity(customers []domain.Customer) (string, string, error) {
	now := s.now()
	customerID := utils.NewCustomerID(now)
	for indexByCustomerID(customers, customerID) >= 0 {
		now = now.Add(time.Millisecond)
		customerID = utils.NewCustomerID(now)
	}

	for attempt := 0; attempt < 10; attempt++ {
		accountNumber, err := utils.NewAccountNumber()
		if err != nil {
			return "", "", fmt.Errorf("failed to generate account number: %w", err)
		}
		if isUniqueIdentity(customers, customerID, accountNumber) {
			return customerID, accountNumber, nil
		}
	}
	return "", "", fmt.Errorf("%w: could not mint a unique account number", apperrors.ErrDuplicate)
}

func (s *onboardingService) ApproveApplication(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	i := indexByCustomerID(customers, customerID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}

	customer := &customers[i]
	if customer.Status != domain.StatusPending {
		return nil, apperrors.ErrAlreadyApproved
	}

	customer.Status = domain.StatusApproved
	customer.Password = domain.DerivedPassword(customer.CustomerID, customer.DOB)

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Customer application approved", slog.String("customer_id", customerID))

	approved := *customer
	return &approved, nil
}

func (s *onboardingService) ListPendingApplications(ctx context.Context) ([]domain.Customer, error) {
	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	pending := make([]domain.Customer, 0)
	for _, c := range customers {
		if c.Status == domain.StatusPending {
			pending = append(pending, c)
		}
	}
	return pending, nil
}

func (s *onboardingService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.store.Lock()
	defer s.store.Unlock()

	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	for _, e := range employees {
		if e.UserID == req.UserID || e.Email == req.Email {
			return nil, apperrors.ErrDuplicate
		}
	}

	employee := domain.Employee{
		FullName: req.FullName,
		DOB:      req.DOB,
		Email:    req.Email,
		UserID:   req.UserID,
		Password: domain.DerivedPassword(req.UserID, req.DOB),
	}

	employees = append(employees, employee)
	if err := s.store.SaveEmployees(ctx, employees); err != nil {
		return nil, fmt.Errorf("failed to save employees: %w", err)
	}

	logger.Info("Employee created", slog.String("user_id", employee.UserID))

	return &employee, nil
}

func (s *onboardingService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	s.store.Lock()
	defer s.store.Unlock()

	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	listed := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsAdmin() {
			continue
		}
		listed = append(listed, e)
	}
	return listed, nil
}

func (s *onboardingService) UpdateContactDetails(ctx context.Context, accountNumber string, req dto.UpdateContactRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	i := indexByAccountNumber(customers, accountNumber)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}

	customer := &customers[i]
	customer.Address = req.Address
	customer.MaritalStatus = req.MaritalStatus
	customer.Mobile = req.Mobile

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Contact details updated", slog.String("account_number", accountNumber))

	updated := *customer
	return &updated, nil
}

func (s *onboardingService) CloseAccount(ctx context.Context, accountNumber, customerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	// Closure demands that both identifiers name the same record.
	idx := -1
	for i := range customers {
		if customers[i].AccountNumber == accountNumber && customers[i].CustomerID == customerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrMismatchedCredentials
	}

	customers = append(customers[:idx], customers[idx+1:]...)
	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Account closed",
		slog.String("account_number", accountNumber),
		slog.String("customer_id", customerID))

	return nil
}

func (s *onboardingService) EnsureAdminSeed(ctx context.Context) error {
	s.store.Lock()
	defer s.store.Unlock()

	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) > 0 {
		return nil
	}

	if err := s.store.SaveEmployees(ctx, []domain.Employee{adminSeed}); err != nil {
		return fmt.Errorf("failed to seed admin employee: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Seeded bootstrap admin employee")
	return nil
}

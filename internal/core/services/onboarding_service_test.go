package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/vafabank/teller_app/internal/apperrors"
	"github.com/vafabank/teller_app/internal/core/domain"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/core/services"
	"github.com/vafabank/teller_app/internal/dto"
)

var onboardingClock = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// --- Test Suite ---
type OnboardingServiceTestSuite struct {
	suite.Suite
	store   *statefulStore
	service portssvc.OnboardingSvcFacade
}

func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.store = newStatefulStore(
		[]domain.Employee{
			{FullName: "Admin User", DOB: "2000-01-01", Email: "admin@vafabank.com", UserID: "admin", Password: "vafa_admin00"},
			{FullName: "Ravi Kumar", DOB: "1990-04-12", Email: "ravi@vafabank.com", UserID: "ravi", Password: "ravi_1990-04-12"},
		},
		[]domain.Customer{
			{
				CustomerID:    "CUST1714550000000",
				AccountNumber: "10101111111111",
				FullName:      "Alice Martin",
				Address:       "12 Elm Street",
				DOB:           "1992-07-21",
				MaritalStatus: "single",
				Email:         "alice@example.com",
				Mobile:        "9000000001",
				Nominee:       "Carl Martin",
				AccountType:   domain.Savings,
				Status:        domain.StatusApproved,
				Password:      "CUST1714550000000_1992-07-21",
				Balance:       decimal.NewFromInt(100),
				Transactions:  []domain.TransactionEntry{},
			},
			{
				CustomerID:    "CUST1714550000001",
				AccountNumber: "10102222222222",
				FullName:      "Bob Singh",
				DOB:           "1988-02-03",
				Email:         "bob@example.com",
				AccountType:   domain.Current,
				Status:        domain.StatusPending,
				Balance:       decimal.Zero,
				Transactions:  []domain.TransactionEntry{},
			},
		},
	)
	suite.service = services.NewOnboardingService(
		services.NewStoreHandle(suite.store),
		services.WithOnboardingClock(func() time.Time { return onboardingClock }),
	)
}

func savingsApplication() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		FullName:      "Dana Cruz",
		Address:       "5 Oak Avenue",
		DOB:           "1995-11-30",
		MaritalStatus: "married",
		Email:         "dana@example.com",
		Mobile:        "9000000002",
		Currency:      "INR",
		AccountType:   domain.Savings,
		Employment: &dto.EmploymentDetailsPayload{
			Status:       "employed",
			Designation:  "Analyst",
			AnnualIncome: decimal.NewFromInt(600000),
		},
	}
}

// --- CreateApplication Tests ---

func (suite *OnboardingServiceTestSuite) TestCreateApplication_Success() {
	ctx := context.Background()

	created, err := suite.service.CreateApplication(ctx, savingsApplication())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)

	suite.True(strings.HasPrefix(created.CustomerID, "CUST"))
	suite.True(strings.HasPrefix(created.AccountNumber, "1010"))
	suite.Len(created.AccountNumber, 14)

	suite.Equal(domain.StatusPending, created.Status)
	suite.Empty(created.Password)
	suite.True(created.Balance.IsZero())
	suite.NotNil(created.Transactions)
	suite.Empty(created.Transactions)

	suite.Require().NotNil(created.Employment)
	suite.Equal("employed", created.Employment.Status)

	suite.Equal(1, suite.store.customerSaves)
	suite.Len(suite.store.customers, 3)
}

func (suite *OnboardingServiceTestSuite) TestCreateApplication_MintsFreshIdentifiers() {
	ctx := context.Background()

	first, err := suite.service.CreateApplication(ctx, savingsApplication())
	suite.Require().NoError(err)

	second := savingsApplication()
	second.Email = "dana.second@example.com"
	created, err := suite.service.CreateApplication(ctx, second)
	suite.Require().NoError(err)

	// The clock is frozen, so the second application's millisecond token
	// collides and must be bumped.
	suite.NotEqual(first.CustomerID, created.CustomerID)
	suite.NotEqual(first.AccountNumber, created.AccountNumber)
}

func (suite *OnboardingServiceTestSuite) TestCreateApplication_NRIRequiresOverseasAddress() {
	ctx := context.Background()

	req := savingsApplication()
	req.AccountType = domain.NRI

	created, err := suite.service.CreateApplication(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.Equal(0, suite.store.customerSaves)
}

func (suite *OnboardingServiceTestSuite) TestCreateApplication_CurrentRejectsEmployment() {
	ctx := context.Background()

	req := savingsApplication()
	req.AccountType = domain.Current
	req.Business = &dto.BusinessDetailsPayload{Address: "1 Market Road", Description: "Retail", AnnualIncome: decimal.NewFromInt(1200000)}

	created, err := suite.service.CreateApplication(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *OnboardingServiceTestSuite) TestCreateApplication_SavingsRejectsOverseasAddress() {
	ctx := context.Background()

	req := savingsApplication()
	req.OverseasAddress = "7 Abroad Lane"

	created, err := suite.service.CreateApplication(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

// --- ApproveApplication Tests ---

func (suite *OnboardingServiceTestSuite) TestApproveApplication_IssuesDerivedPassword() {
	ctx := context.Background()

	approved, err := suite.service.ApproveApplication(ctx, "CUST1714550000001")

	suite.Require().NoError(err)
	suite.Require().NotNil(approved)
	suite.Equal(domain.StatusApproved, approved.Status)
	suite.Equal("CUST1714550000001_1988-02-03", approved.Password)

	persisted := suite.store.customerByAccount("10102222222222")
	suite.Equal(domain.StatusApproved, persisted.Status)
	suite.Equal(approved.Password, persisted.Password)
}

func (suite *OnboardingServiceTestSuite) TestApproveApplication_Twice() {
	ctx := context.Background()

	_, err := suite.service.ApproveApplication(ctx, "CUST1714550000001")
	suite.Require().NoError(err)

	approved, err := suite.service.ApproveApplication(ctx, "CUST1714550000001")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyApproved)
	suite.Nil(approved)
}

func (suite *OnboardingServiceTestSuite) TestApproveApplication_NotFound() {
	ctx := context.Background()

	approved, err := suite.service.ApproveApplication(ctx, "CUST0000000000000")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(approved)
}

// --- ListPendingApplications Tests ---

func (suite *OnboardingServiceTestSuite) TestListPendingApplications() {
	ctx := context.Background()

	pending, err := suite.service.ListPendingApplications(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("CUST1714550000001", pending[0].CustomerID)
}

// --- CreateEmployee Tests ---

func (suite *OnboardingServiceTestSuite) TestCreateEmployee_DerivesPassword() {
	ctx := context.Background()

	created, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		FullName: "Mina Patel",
		DOB:      "1993-09-09",
		Email:    "mina@vafabank.com",
		UserID:   "mina",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("mina_1993-09-09", created.Password)
	suite.Equal(1, suite.store.employeeSaves)
	suite.Len(suite.store.employees, 3)
}

func (suite *OnboardingServiceTestSuite) TestCreateEmployee_DuplicateUserID() {
	ctx := context.Background()

	created, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		FullName: "Another Ravi",
		DOB:      "1991-01-01",
		Email:    "other@vafabank.com",
		UserID:   "ravi",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.Equal(0, suite.store.employeeSaves)
}

func (suite *OnboardingServiceTestSuite) TestCreateEmployee_DuplicateEmail() {
	ctx := context.Background()

	created, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		FullName: "Mail Clash",
		DOB:      "1991-01-01",
		Email:    "ravi@vafabank.com",
		UserID:   "ravi2",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
}

// --- ListEmployees Tests ---

func (suite *OnboardingServiceTestSuite) TestListEmployees_ExcludesAdmin() {
	ctx := context.Background()

	employees, err := suite.service.ListEmployees(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(employees, 1)
	suite.Equal("ravi", employees[0].UserID)
}

// --- UpdateContactDetails Tests ---

func (suite *OnboardingServiceTestSuite) TestUpdateContactDetails_TouchesOnlyMutableFields() {
	ctx := context.Background()

	updated, err := suite.service.UpdateContactDetails(ctx, "10101111111111", dto.UpdateContactRequest{
		Address:       "99 New Street",
		MaritalStatus: "married",
		Mobile:        "9111111111",
	})

	suite.Require().NoError(err)
	suite.Equal("99 New Street", updated.Address)
	suite.Equal("married", updated.MaritalStatus)
	suite.Equal("9111111111", updated.Mobile)

	// Everything else survives unchanged.
	suite.Equal("Alice Martin", updated.FullName)
	suite.Equal("alice@example.com", updated.Email)
	suite.Equal("Carl Martin", updated.Nominee)
	suite.Equal("1992-07-21", updated.DOB)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(100)))
}

func (suite *OnboardingServiceTestSuite) TestUpdateContactDetails_NotFound() {
	ctx := context.Background()

	updated, err := suite.service.UpdateContactDetails(ctx, "10100000000000", dto.UpdateContactRequest{
		Address:       "x",
		MaritalStatus: "single",
		Mobile:        "9",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
}

// --- CloseAccount Tests ---

func (suite *OnboardingServiceTestSuite) TestCloseAccount_RemovesRecord() {
	ctx := context.Background()

	err := suite.service.CloseAccount(ctx, "10101111111111", "CUST1714550000000")

	suite.Require().NoError(err)
	suite.Len(suite.store.customers, 1)
	suite.Nil(suite.store.customerByAccount("10101111111111"))
}

func (suite *OnboardingServiceTestSuite) TestCloseAccount_MismatchedPair() {
	ctx := context.Background()

	// Both identifiers exist but belong to different records.
	err := suite.service.CloseAccount(ctx, "10101111111111", "CUST1714550000001")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMismatchedCredentials)
	suite.Len(suite.store.customers, 2)
	suite.Equal(0, suite.store.customerSaves)
}

// --- EnsureAdminSeed Tests ---

func (suite *OnboardingServiceTestSuite) TestEnsureAdminSeed_EmptyCollection() {
	ctx := context.Background()
	store := newStatefulStore(nil, nil)
	service := services.NewOnboardingService(services.NewStoreHandle(store))

	err := service.EnsureAdminSeed(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(store.employees, 1)
	admin := store.employees[0]
	suite.Equal("admin", admin.UserID)
	suite.Equal("admin@vafabank.com", admin.Email)
	suite.Equal("vafa_admin00", admin.Password)
	suite.True(admin.IsAdmin())
}

func (suite *OnboardingServiceTestSuite) TestEnsureAdminSeed_AlreadySeeded() {
	ctx := context.Background()

	err := suite.service.EnsureAdminSeed(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, suite.store.employeeSaves)
	suite.Len(suite.store.employees, 2)
}

func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}

package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vafabank/teller_app/internal/core/domain"
)

// --- Mock RecordStore (based on service usage) ---
type MockRecordStore struct {
	mock.Mock
	LoadEmployeesFn func(ctx context.Context) ([]domain.Employee, error)
	SaveEmployeesFn func(ctx context.Context, employees []domain.Employee) error
	LoadCustomersFn func(ctx context.Context) ([]domain.Customer, error)
	SaveCustomersFn func(ctx context.Context, customers []domain.Customer) error
}

func (m *MockRecordStore) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	if m.LoadEmployeesFn != nil {
		return m.LoadEmployeesFn(ctx)
	}
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockRecordStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	if m.SaveEmployeesFn != nil {
		return m.SaveEmployeesFn(ctx, employees)
	}
	args := m.Called(ctx, employees)
	return args.Error(0)
}

func (m *MockRecordStore) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	if m.LoadCustomersFn != nil {
		return m.LoadCustomersFn(ctx)
	}
	args := m.Called(ctx)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockRecordStore) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	if m.SaveCustomersFn != nil {
		return m.SaveCustomersFn(ctx, customers)
	}
	args := m.Called(ctx, customers)
	return args.Error(0)
}

// statefulStore wires the mock's Fn hooks to in-memory collections so the
// whole load-modify-save cycle of a service can be observed end to end.
// saveCount tracks how many collection writes each test caused.
type statefulStore struct {
	*MockRecordStore
	employees []domain.Employee
	customers []domain.Customer

	employeeSaves int
	customerSaves int
}

func newStatefulStore(employees []domain.Employee, customers []domain.Customer) *statefulStore {
	s := &statefulStore{
		MockRecordStore: new(MockRecordStore),
		employees:       append([]domain.Employee(nil), employees...),
		customers:       append([]domain.Customer(nil), customers...),
	}
	s.LoadEmployeesFn = func(ctx context.Context) ([]domain.Employee, error) {
		return append([]domain.Employee(nil), s.employees...), nil
	}
	s.SaveEmployeesFn = func(ctx context.Context, employees []domain.Employee) error {
		s.employees = append([]domain.Employee(nil), employees...)
		s.employeeSaves++
		return nil
	}
	s.LoadCustomersFn = func(ctx context.Context) ([]domain.Customer, error) {
		return append([]domain.Customer(nil), s.customers...), nil
	}
	s.SaveCustomersFn = func(ctx context.Context, customers []domain.Customer) error {
		s.customers = append([]domain.Customer(nil), customers...)
		s.customerSaves++
		return nil
	}
	return s
}

// customerByAccount fetches a persisted record for assertions.
func (s *statefulStore) customerByAccount(accountNumber string) *domain.Customer {
	for i := range s.customers {
		if s.customers[i].AccountNumber == accountNumber {
			return &s.customers[i]
		}
	}
	return nil
}

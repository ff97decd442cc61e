package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vafabank/teller_app/internal/apperrors"
	"github.com/vafabank/teller_app/internal/core/domain"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/middleware"
)

// authService implements the AuthSvcFacade interface. It does not issue
// tokens itself; it only resolves credentials to an actor, leaving session
// minting to the transport layer.
type authService struct {
	store *StoreHandle
}

// NewAuthService creates a new auth service.
func NewAuthService(store *StoreHandle) portssvc.AuthSvcFacade {
	return &authService{store: store}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login checks employees before customers: an employee userId or email that
// matches wins over a colliding customer identifier. Pending customers are
// refused even with the correct (not yet issued) password.
func (s *authService) Login(ctx context.Context, identifier, password string) (*domain.Actor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.store.Lock()
	defer s.store.Unlock()

	employees, err := s.store.LoadEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	for i := range employees {
		e := employees[i]
		if (e.UserID == identifier || e.Email == identifier) && e.Password == password {
			role := domain.RoleEmployee
			if e.IsAdmin() {
				role = domain.RoleAdmin
			}
			logger.Info("Employee login", slog.String("user_id", e.UserID), slog.String("role", string(role)))
			return &domain.Actor{Role: role, Employee: &e}, nil
		}
	}

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	for i := range customers {
		c := customers[i]
		if (c.CustomerID == identifier || c.Email == identifier) && c.Password == password {
			if c.Status == domain.StatusPending {
				return nil, apperrors.ErrPendingApproval
			}
			logger.Info("Customer login", slog.String("customer_id", c.CustomerID))
			return &domain.Actor{Role: domain.RoleCustomer, Customer: &c}, nil
		}
	}

	// A pending application has no password yet; surface that instead of a
	// generic credential failure when the identifier matches one.
	for i := range customers {
		c := customers[i]
		if (c.CustomerID == identifier || c.Email == identifier) && c.Status == domain.StatusPending {
			return nil, apperrors.ErrPendingApproval
		}
	}

	return nil, apperrors.ErrUnauthorized
}

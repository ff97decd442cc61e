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
)

// ledgerService implements the LedgerSvcFacade interface. Every operation
// loads the full customer collection, validates all preconditions before
// mutating anything, applies the mutation in memory and writes the whole
// collection back in one save.
type ledgerService struct {
	store *StoreHandle
	now   func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service.
type LedgerOption func(*ledgerService)

// WithLedgerClock overrides the clock used to stamp transfer entries.
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options.
func NewLedgerService(store *StoreHandle, options ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		store: store,
		now:   time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) Deposit(ctx context.Context, req dto.DepositRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	i := indexByAccountNumber(customers, req.AccountNumber)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}

	account := &customers[i]
	account.Balance = account.Balance.Add(req.Amount)
	account.Transactions = append(account.Transactions, domain.TransactionEntry{
		Date:        req.Date,
		Description: req.Description,
		Deposit:     req.Amount,
		Balance:     account.Balance,
	})

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Deposit applied",
		slog.String("account_number", account.AccountNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("balance", account.Balance.String()))

	updated := *account
	return &updated, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, req dto.WithdrawRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	i := indexByAccountNumber(customers, req.AccountNumber)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}

	account := &customers[i]
	if account.Balance.LessThan(req.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	account.Balance = account.Balance.Sub(req.Amount)
	account.Transactions = append(account.Transactions, domain.TransactionEntry{
		Date:        req.Date,
		Description: req.Description,
		Withdrawal:  req.Amount,
		Balance:     account.Balance,
	})

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Withdrawal applied",
		slog.String("account_number", account.AccountNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("balance", account.Balance.String()))

	updated := *account
	return &updated, nil
}

func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Customer, *domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if req.FromAccountNumber == req.ToAccountNumber {
		return nil, nil, apperrors.ErrSelfTransfer
	}

	s.store.Lock()
	defer s.store.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load customers: %w", err)
	}

	fromIdx := indexByAccountNumber(customers, req.FromAccountNumber)
	toIdx := indexByAccountNumber(customers, req.ToAccountNumber)
	if fromIdx < 0 || toIdx < 0 {
		return nil, nil, apperrors.ErrNotFound
	}

	from := &customers[fromIdx]
	to := &customers[toIdx]
	if from.Balance.LessThan(req.Amount) {
		return nil, nil, apperrors.ErrInsufficientFunds
	}

	// Both entries carry the same system date and land in one collection
	// save; the store never observes a half-applied transfer.
	date := s.now().Format("2006-01-02")

	from.Balance = from.Balance.Sub(req.Amount)
	from.Transactions = append(from.Transactions, domain.TransactionEntry{
		Date:        date,
		Description: fmt.Sprintf("Transfer to %s (%s)", to.FullName, req.Type),
		Withdrawal:  req.Amount,
		Balance:     from.Balance,
	})

	to.Balance = to.Balance.Add(req.Amount)
	to.Transactions = append(to.Transactions, domain.TransactionEntry{
		Date:        date,
		Description: fmt.Sprintf("Transfer from %s (%s)", from.FullName, req.Type),
		Deposit:     req.Amount,
		Balance:     to.Balance,
	})

	if err := s.store.SaveCustomers(ctx, customers); err != nil {
		return nil, nil, fmt.Errorf("failed to save customers: %w", err)
	}

	logger.Info("Transfer applied",
		slog.String("from_account", from.AccountNumber),
		slog.String("to_account", to.AccountNumber),
		slog.String("amount", req.Amount.String()))

	updatedFrom := *from
	updatedTo := *to
	return &updatedFrom, &updatedTo, nil
}

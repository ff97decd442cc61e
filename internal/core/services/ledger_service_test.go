package services_test

import (
	"context"
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

var ledgerClock = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	store   *statefulStore
	service portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.store = newStatefulStore(nil, []domain.Customer{
		{
			CustomerID:    "CUST1700000000001",
			AccountNumber: "10101234567890",
			FullName:      "Alice Martin",
			Status:        domain.StatusApproved,
			Balance:       decimal.NewFromInt(1000),
			Transactions: []domain.TransactionEntry{
				{Date: "2024-01-02", Description: "Initial deposit", Deposit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000)},
			},
		},
		{
			CustomerID:    "CUST1700000000002",
			AccountNumber: "10109876543210",
			FullName:      "Bob Singh",
			Status:        domain.StatusApproved,
			Balance:       decimal.NewFromInt(300),
			Transactions: []domain.TransactionEntry{
				{Date: "2024-01-03", Description: "Initial deposit", Deposit: decimal.NewFromInt(300), Balance: decimal.NewFromInt(300)},
			},
		},
	})
	suite.service = services.NewLedgerService(
		services.NewStoreHandle(suite.store),
		services.WithLedgerClock(func() time.Time { return ledgerClock }),
	)
}

// --- Deposit Tests ---

func (suite *LedgerServiceTestSuite) TestDeposit_AppendsEntryAndUpdatesBalance() {
	ctx := context.Background()

	updated, err := suite.service.Deposit(ctx, dto.DepositRequest{
		AccountNumber: "10101234567890",
		Amount:        decimal.NewFromInt(500),
		Date:          "2024-03-15",
		Description:   "Cash deposit",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(1500)))

	suite.Require().Len(updated.Transactions, 2)
	entry := updated.Transactions[1]
	suite.Equal("2024-03-15", entry.Date)
	suite.Equal("Cash deposit", entry.Description)
	suite.True(entry.Deposit.Equal(decimal.NewFromInt(500)))
	suite.True(entry.Withdrawal.IsZero())
	suite.True(entry.Balance.Equal(updated.Balance))
	suite.True(updated.LastBalance().Equal(updated.Balance))

	// The whole collection was written back once.
	suite.Equal(1, suite.store.customerSaves)
	persisted := suite.store.customerByAccount("10101234567890")
	suite.Require().NotNil(persisted)
	suite.True(persisted.Balance.Equal(decimal.NewFromInt(1500)))
	suite.Len(persisted.Transactions, 2)
}

func (suite *LedgerServiceTestSuite) TestDeposit_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		updated, err := suite.service.Deposit(ctx, dto.DepositRequest{
			AccountNumber: "10101234567890",
			Amount:        amount,
			Date:          "2024-03-15",
		})

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(updated)
	}

	// Rejected operations leave the store untouched.
	suite.Equal(0, suite.store.customerSaves)
	suite.True(suite.store.customerByAccount("10101234567890").Balance.Equal(decimal.NewFromInt(1000)))
}

func (suite *LedgerServiceTestSuite) TestDeposit_UnknownAccount() {
	ctx := context.Background()

	updated, err := suite.service.Deposit(ctx, dto.DepositRequest{
		AccountNumber: "10100000000000",
		Amount:        decimal.NewFromInt(10),
		Date:          "2024-03-15",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.Equal(0, suite.store.customerSaves)
}

// --- Withdraw Tests ---

func (suite *LedgerServiceTestSuite) TestWithdraw_AppendsEntryAndUpdatesBalance() {
	ctx := context.Background()

	updated, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{
		AccountNumber: "10109876543210",
		Amount:        decimal.NewFromInt(200),
		Date:          "2024-03-16",
		Description:   "ATM withdrawal",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(100)))

	suite.Require().Len(updated.Transactions, 2)
	entry := updated.Transactions[1]
	suite.Equal("2024-03-16", entry.Date)
	suite.True(entry.Withdrawal.Equal(decimal.NewFromInt(200)))
	suite.True(entry.Deposit.IsZero())
	suite.True(entry.Balance.Equal(updated.Balance))
	suite.Equal(1, suite.store.customerSaves)
}

func (suite *LedgerServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()

	// Balance is 300; an exact-balance withdrawal is still allowed, one
	// rupee more is not.
	updated, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{
		AccountNumber: "10109876543210",
		Amount:        decimal.NewFromInt(301),
		Date:          "2024-03-16",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(updated)

	suite.Equal(0, suite.store.customerSaves)
	persisted := suite.store.customerByAccount("10109876543210")
	suite.True(persisted.Balance.Equal(decimal.NewFromInt(300)))
	suite.Len(persisted.Transactions, 1)
}

func (suite *LedgerServiceTestSuite) TestWithdraw_ExactBalance() {
	ctx := context.Background()

	updated, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{
		AccountNumber: "10109876543210",
		Amount:        decimal.NewFromInt(300),
		Date:          "2024-03-16",
	})

	suite.Require().NoError(err)
	suite.True(updated.Balance.IsZero())
	suite.True(updated.LastBalance().IsZero())
}

// --- Transfer Tests ---

func (suite *LedgerServiceTestSuite) TestTransfer_DebitsAndCreditsAtomically() {
	ctx := context.Background()

	from, to, err := suite.service.Transfer(ctx, dto.TransferRequest{
		FromAccountNumber: "10101234567890",
		ToAccountNumber:   "10109876543210",
		Amount:            decimal.NewFromInt(200),
		Type:              "IMPS",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(from)
	suite.Require().NotNil(to)

	suite.True(from.Balance.Equal(decimal.NewFromInt(800)))
	suite.True(to.Balance.Equal(decimal.NewFromInt(500)))

	// Funds are conserved across the pair.
	total := from.Balance.Add(to.Balance)
	suite.True(total.Equal(decimal.NewFromInt(1300)))

	suite.Require().Len(from.Transactions, 2)
	debit := from.Transactions[1]
	suite.Equal("Transfer to Bob Singh (IMPS)", debit.Description)
	suite.Equal("2024-03-15", debit.Date)
	suite.True(debit.Withdrawal.Equal(decimal.NewFromInt(200)))
	suite.True(debit.Balance.Equal(from.Balance))

	suite.Require().Len(to.Transactions, 2)
	credit := to.Transactions[1]
	suite.Equal("Transfer from Alice Martin (IMPS)", credit.Description)
	suite.Equal(debit.Date, credit.Date)
	suite.True(credit.Deposit.Equal(decimal.NewFromInt(200)))
	suite.True(credit.Balance.Equal(to.Balance))

	// One collection write covers both sides.
	suite.Equal(1, suite.store.customerSaves)
}

func (suite *LedgerServiceTestSuite) TestTransfer_SelfTransfer() {
	ctx := context.Background()

	from, to, err := suite.service.Transfer(ctx, dto.TransferRequest{
		FromAccountNumber: "10101234567890",
		ToAccountNumber:   "10101234567890",
		Amount:            decimal.NewFromInt(50),
		Type:              "NEFT",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSelfTransfer)
	suite.Nil(from)
	suite.Nil(to)
	suite.Equal(0, suite.store.customerSaves)
}

func (suite *LedgerServiceTestSuite) TestTransfer_InsufficientFunds() {
	ctx := context.Background()

	from, to, err := suite.service.Transfer(ctx, dto.TransferRequest{
		FromAccountNumber: "10109876543210",
		ToAccountNumber:   "10101234567890",
		Amount:            decimal.NewFromInt(301),
		Type:              "RTGS",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(from)
	suite.Nil(to)

	// Neither side moved.
	suite.Equal(0, suite.store.customerSaves)
	suite.True(suite.store.customerByAccount("10109876543210").Balance.Equal(decimal.NewFromInt(300)))
	suite.True(suite.store.customerByAccount("10101234567890").Balance.Equal(decimal.NewFromInt(1000)))
}

func (suite *LedgerServiceTestSuite) TestTransfer_UnknownDestination() {
	ctx := context.Background()

	from, to, err := suite.service.Transfer(ctx, dto.TransferRequest{
		FromAccountNumber: "10101234567890",
		ToAccountNumber:   "10100000000000",
		Amount:            decimal.NewFromInt(10),
		Type:              "IMPS",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(from)
	suite.Nil(to)
	suite.Equal(0, suite.store.customerSaves)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

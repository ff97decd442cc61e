package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vafabank/teller_app/internal/core/domain"
)

// DepositRequest credits an account. The date is caller-supplied, matching
// the teller console's date field.
type DepositRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string          `json:"description"`
}

// WithdrawRequest debits an account.
type WithdrawRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string          `json:"description"`
}

// TransferRequest moves funds between two accounts. Both passbook entries
// are stamped with the current date by the ledger; the transfer type
// (e.g. IMPS, NEFT, RTGS) is echoed into the entry descriptions.
type TransferRequest struct {
	FromAccountNumber string          `json:"fromAccountNumber" binding:"required"`
	ToAccountNumber   string          `json:"toAccountNumber" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Type              string          `json:"type" binding:"required"`
}

// CustomerTransferRequest is the customer console's transfer form. The
// source account comes from the session, not the request, so a customer can
// only move their own funds.
type CustomerTransferRequest struct {
	ToAccountNumber string          `json:"toAccountNumber" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Type            string          `json:"type" binding:"required"`
}

// EntryResponse is one passbook row.
type EntryResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Deposit     decimal.Decimal `json:"deposit"`
	Withdrawal  decimal.Decimal `json:"withdrawal"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountActivityResponse reports the state of one account after a ledger
// operation: its new balance and the entry that was appended.
type AccountActivityResponse struct {
	AccountNumber string          `json:"accountNumber"`
	FullName      string          `json:"fullName"`
	Balance       decimal.Decimal `json:"balance"`
	Entry         EntryResponse   `json:"entry"`
}

// TransferResponse reports both sides of a completed transfer.
type TransferResponse struct {
	From AccountActivityResponse `json:"from"`
	To   AccountActivityResponse `json:"to"`
}

// PassbookResponse is the ordered, append-only passbook of one account.
type PassbookResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	Entries       []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.TransactionEntry.
func ToEntryResponse(e domain.TransactionEntry) EntryResponse {
	return EntryResponse{
		Date:        e.Date,
		Description: e.Description,
		Deposit:     e.Deposit,
		Withdrawal:  e.Withdrawal,
		Balance:     e.Balance,
	}
}

// ToAccountActivityResponse reports the account state after its latest
// entry was appended.
func ToAccountActivityResponse(c *domain.Customer) AccountActivityResponse {
	res := AccountActivityResponse{
		AccountNumber: c.AccountNumber,
		FullName:      c.FullName,
		Balance:       c.Balance,
	}
	if len(c.Transactions) > 0 {
		res.Entry = ToEntryResponse(c.Transactions[len(c.Transactions)-1])
	}
	return res
}

// ToPassbookResponse converts a customer's full passbook.
func ToPassbookResponse(c *domain.Customer) PassbookResponse {
	entries := make([]EntryResponse, len(c.Transactions))
	for i, e := range c.Transactions {
		entries[i] = ToEntryResponse(e)
	}
	return PassbookResponse{
		AccountNumber: c.AccountNumber,
		Balance:       c.Balance,
		Entries:       entries,
	}
}

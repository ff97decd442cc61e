package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a customer account and decides which extra
// profile payload the application form carries.
type AccountType string

const (
	Savings AccountType = "Savings"
	Salary  AccountType = "Salary"
	Current AccountType = "Current"
	NRI     AccountType = "NRI"
)

// CustomerStatus governs login eligibility of a customer record.
type CustomerStatus string

const (
	StatusPending  CustomerStatus = "pending"
	StatusApproved CustomerStatus = "approved"
)

// EmploymentDetails is the conditional profile payload for Savings, Salary
// and NRI accounts.
type EmploymentDetails struct {
	Status        string          `json:"status"` // employed / self-employed
	OfficeAddress string          `json:"officeAddress,omitempty"`
	Designation   string          `json:"designation,omitempty"`
	AnnualIncome  decimal.Decimal `json:"annualIncome"`
}

// BusinessDetails is the conditional profile payload for Current accounts.
type BusinessDetails struct {
	Address      string          `json:"address"`
	Description  string          `json:"description"`
	AnnualIncome decimal.Decimal `json:"annualIncome"`
}

// TransactionEntry is one immutable passbook row. Exactly one of Deposit
// and Withdrawal is non-zero; Balance is the running balance snapshot
// taken after the entry was applied, not a derived value.
type TransactionEntry struct {
	Date        string          `json:"date"` // YYYY-MM-DD, stored verbatim
	Description string          `json:"description"`
	Deposit     decimal.Decimal `json:"deposit"`
	Withdrawal  decimal.Decimal `json:"withdrawal"`
	Balance     decimal.Decimal `json:"balance"`
}

// Customer conflates identity and account: one record carries the profile,
// credentials, balance and the append-only passbook.
type Customer struct {
	CustomerID    string         `json:"customerId"`    // format CUST<unique-token>
	AccountNumber string         `json:"accountNumber"` // 14 chars, "1010" + 10 digits
	FullName      string         `json:"fullName"`
	Address       string         `json:"address"`
	DOB           string         `json:"dob"`
	MaritalStatus string         `json:"maritalStatus"`
	Email         string         `json:"email"`
	Mobile        string         `json:"mobile"`
	Telephone     string         `json:"telephone"`
	Nominee       string         `json:"nominee"`
	Currency      string         `json:"currency"`
	AccountType   AccountType    `json:"accountType"`
	Status        CustomerStatus `json:"status"`
	Password      string         `json:"password"` // empty until approval

	// Conditional payloads, keyed by AccountType.
	OverseasAddress string             `json:"overseasAddress,omitempty"` // present iff NRI
	Employment      *EmploymentDetails `json:"employment,omitempty"`
	Business        *BusinessDetails   `json:"business,omitempty"`

	Balance      decimal.Decimal    `json:"balance"`
	Transactions []TransactionEntry `json:"transactions"`
}

// LastBalance returns the balance snapshot of the most recent passbook
// entry, or zero when the passbook is empty. For a consistent record this
// always equals Balance.
func (c Customer) LastBalance() decimal.Decimal {
	if len(c.Transactions) == 0 {
		return decimal.Zero
	}
	return c.Transactions[len(c.Transactions)-1].Balance
}

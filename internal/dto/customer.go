package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vafabank/teller_app/internal/core/domain"
)

// EmploymentDetailsPayload is the conditional form section for Savings,
// Salary and NRI applications.
type EmploymentDetailsPayload struct {
	Status        string          `json:"status" binding:"required,oneof=employed self-employed"`
	OfficeAddress string          `json:"officeAddress"`
	Designation   string          `json:"designation"`
	AnnualIncome  decimal.Decimal `json:"annualIncome"`
}

// BusinessDetailsPayload is the conditional form section for Current
// account applications.
type BusinessDetailsPayload struct {
	Address      string          `json:"address"`
	Description  string          `json:"description"`
	AnnualIncome decimal.Decimal `json:"annualIncome"`
}

// CreateApplicationRequest carries the open-account form. Which of the
// optional payloads must be present depends on AccountType; the onboarding
// service validates the combination.
type CreateApplicationRequest struct {
	FullName      string             `json:"fullName" binding:"required"`
	Address       string             `json:"address" binding:"required"`
	DOB           string             `json:"dob" binding:"required,datetime=2006-01-02"`
	MaritalStatus string             `json:"maritalStatus" binding:"required"`
	Email         string             `json:"email" binding:"required,email"`
	Mobile        string             `json:"mobile" binding:"required"`
	Telephone     string             `json:"telephone"`
	Nominee       string             `json:"nominee"`
	Currency      string             `json:"currency" binding:"required"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=Savings Salary Current NRI"`

	OverseasAddress string                    `json:"overseasAddress"`
	Employment      *EmploymentDetailsPayload `json:"employment"`
	Business        *BusinessDetailsPayload   `json:"business"`
}

// UpdateContactRequest is the teller console's update form. Only these
// three profile fields are mutable after an account is opened.
type UpdateContactRequest struct {
	Address       string `json:"address" binding:"required"`
	MaritalStatus string `json:"maritalStatus" binding:"required"`
	Mobile        string `json:"mobile" binding:"required"`
}

// CloseAccountRequest must name both identifiers of the same record.
type CloseAccountRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	CustomerID    string `json:"customerId" binding:"required"`
}

// CustomerResponse is the full customer record as rendered by the consoles.
type CustomerResponse struct {
	CustomerID    string                `json:"customerId"`
	AccountNumber string                `json:"accountNumber"`
	FullName      string                `json:"fullName"`
	Address       string                `json:"address"`
	DOB           string                `json:"dob"`
	MaritalStatus string                `json:"maritalStatus"`
	Email         string                `json:"email"`
	Mobile        string                `json:"mobile"`
	Telephone     string                `json:"telephone"`
	Nominee       string                `json:"nominee"`
	Currency      string                `json:"currency"`
	AccountType   domain.AccountType    `json:"accountType"`
	Status        domain.CustomerStatus `json:"status"`
	Balance       decimal.Decimal       `json:"balance"`

	OverseasAddress string `json:"overseasAddress,omitempty"`
}

// ToCustomerResponse converts a domain.Customer, omitting credentials and
// the passbook (served separately).
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:      c.CustomerID,
		AccountNumber:   c.AccountNumber,
		FullName:        c.FullName,
		Address:         c.Address,
		DOB:             c.DOB,
		MaritalStatus:   c.MaritalStatus,
		Email:           c.Email,
		Mobile:          c.Mobile,
		Telephone:       c.Telephone,
		Nominee:         c.Nominee,
		Currency:        c.Currency,
		AccountType:     c.AccountType,
		Status:          c.Status,
		Balance:         c.Balance,
		OverseasAddress: c.OverseasAddress,
	}
}

// ApplicationResponse is returned on application submission and approval.
// The derived password is only populated after approval, mirroring the
// alert shown to the admin in the original console.
type ApplicationResponse struct {
	CustomerID    string                `json:"customerId"`
	AccountNumber string                `json:"accountNumber"`
	FullName      string                `json:"fullName"`
	AccountType   domain.AccountType    `json:"accountType"`
	Status        domain.CustomerStatus `json:"status"`
	Password      string                `json:"password,omitempty"`
}

// ToApplicationResponse converts a domain.Customer for the admin listings.
func ToApplicationResponse(c *domain.Customer) ApplicationResponse {
	return ApplicationResponse{
		CustomerID:    c.CustomerID,
		AccountNumber: c.AccountNumber,
		FullName:      c.FullName,
		AccountType:   c.AccountType,
		Status:        c.Status,
		Password:      c.Password,
	}
}

// ListApplicationsResponse wraps the pending application listing.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// ToListApplicationsResponse converts a slice of domain.Customer.
func ToListApplicationsResponse(customers []domain.Customer) ListApplicationsResponse {
	res := make([]ApplicationResponse, len(customers))
	for i := range customers {
		res[i] = ToApplicationResponse(&customers[i])
	}
	return ListApplicationsResponse{Applications: res}
}

package dto

import "github.com/vafabank/teller_app/internal/core/domain"

// CreateEmployeeRequest defines the admin console's employee creation form.
// The password is not part of the request: it is derived by the service.
type CreateEmployeeRequest struct {
	FullName string `json:"fullName" binding:"required"`
	DOB      string `json:"dob" binding:"required,datetime=2006-01-02"`
	Email    string `json:"email" binding:"required,email"`
	UserID   string `json:"userId" binding:"required"`
}

// EmployeeResponse mirrors domain.Employee. The derived password is
// returned so the admin can hand it to the new employee, matching the
// original console behaviour.
type EmployeeResponse struct {
	FullName string `json:"fullName"`
	DOB      string `json:"dob"`
	Email    string `json:"email"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		FullName: e.FullName,
		DOB:      e.DOB,
		Email:    e.Email,
		UserID:   e.UserID,
		Password: e.Password,
	}
}

// ListEmployeesResponse wraps the employee listing of the admin console.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.Employee.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: res}
}

package domain

// Role is the console a logged-in actor may use.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

// Actor is the resolved identity behind a session. Exactly one of Employee
// and Customer is set, depending on Role.
type Actor struct {
	Role     Role
	Employee *Employee
	Customer *Customer
}

// Subject returns the identifier carried into the session token:
// the employee userId or the customerId.
func (a Actor) Subject() string {
	switch a.Role {
	case RoleCustomer:
		if a.Customer != nil {
			return a.Customer.CustomerID
		}
	default:
		if a.Employee != nil {
			return a.Employee.UserID
		}
	}
	return ""
}

package domain

// AdminUserID is the reserved identifier of the bootstrap admin employee.
// The record carrying it is seeded on first start and never listed or deleted.
const AdminUserID = "admin"

// Employee represents a bank employee in the core domain.
// Records are created only by the admin console and never mutated afterwards.
type Employee struct {
	FullName string `json:"fullName"`
	DOB      string `json:"dob"` // stored verbatim as entered (YYYY-MM-DD)
	Email    string `json:"email"`
	UserID   string `json:"userId"` // unique among employees, "admin" reserved
	Password string `json:"password"`
}

// IsAdmin reports whether this employee is the reserved admin record.
func (e Employee) IsAdmin() bool {
	return e.UserID == AdminUserID
}

// DerivedPassword returns the legacy issuance-policy password for an
// identifier and date of birth. The scheme is deliberately kept compatible
// with the stored data format: "<identifier>_<dob>" with the dob verbatim.
func DerivedPassword(identifier, dob string) string {
	return identifier + "_" + dob
}

package employee

import "time"

// Employee is the stored employee row. ID, CompanyID and EmployeeNumber never
// change after creation; Deleted rows stay in the table so their numbers are
// never issued again.
type Employee struct {
	ID                    int64
	CompanyID             int64
	EmployeeNumber        int
	FirstName             string
	LastName              string
	SocialSecurityNumber  string
	HireDate              *time.Time
	ManagerEmployeeNumber *int
	Deleted               bool
	LastModifiedAt        time.Time
}

// ApplyChanges copies the mutable fields of src onto e.
func (e *Employee) ApplyChanges(src Employee) {
	e.FirstName = src.FirstName
	e.LastName = src.LastName
	e.SocialSecurityNumber = src.SocialSecurityNumber
	e.HireDate = src.HireDate
	e.ManagerEmployeeNumber = src.ManagerEmployeeNumber
}

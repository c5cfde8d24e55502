package employee

import (
	"math"
	"time"

	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
)

const (
	maxNameLength = 100
	maxSSNLength  = 32
)

// EmployeeModel is the external representation of an employee. EmployeeNumber
// is the only identifier exposed; store ids never leave the service.
type EmployeeModel struct {
	CompanyName           string  `json:"companyName"`
	EmployeeNumber        int     `json:"employeeNumber"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	SocialSecurityNumber  string  `json:"socialSecurityNumber"`
	HireDate              *string `json:"hireDate,omitempty"`
	ManagerEmployeeNumber *int    `json:"managerEmployeeNumber,omitempty"`
}

// ValidateForCreate checks the fields a new employee needs. EmployeeNumber is
// ignored: it is assigned by the service.
func (r *EmployeeModel) ValidateForCreate() error {
	var errs validator.ValidationErrors
	r.validateFields(&errs)
	return errs.Err()
}

// ValidateForUpdate additionally requires the employee number being updated.
func (r *EmployeeModel) ValidateForUpdate() error {
	var errs validator.ValidationErrors
	r.validateFields(&errs)
	if r.EmployeeNumber < 1 {
		errs.Add("employeeNumber", "employeeNumber must be at least 1")
	}
	return errs.Err()
}

func (r *EmployeeModel) validateFields(errs *validator.ValidationErrors) {
	if validator.IsEmpty(r.CompanyName) {
		errs.Add("companyName", "companyName is required")
	}
	if validator.ExceedsLength(r.FirstName, maxNameLength) {
		errs.Add("firstName", "firstName must not exceed 100 characters")
	}
	if validator.ExceedsLength(r.LastName, maxNameLength) {
		errs.Add("lastName", "lastName must not exceed 100 characters")
	}
	if validator.ExceedsLength(r.SocialSecurityNumber, maxSSNLength) {
		errs.Add("socialSecurityNumber", "socialSecurityNumber must not exceed 32 characters")
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs.Add("hireDate", "hireDate must be in YYYY-MM-DD format")
		}
	}
	if r.ManagerEmployeeNumber != nil {
		if n := *r.ManagerEmployeeNumber; n < 1 || n > math.MaxInt32 {
			errs.Add("managerEmployeeNumber", "managerEmployeeNumber must be between 1 and 2147483647")
		}
	}
}

// ToEntity maps the mutable fields onto a storage row. Call after validation;
// an unparsable hire date is dropped.
func (r *EmployeeModel) ToEntity() Employee {
	var hireDate *time.Time
	if r.HireDate != nil {
		if d, ok := validator.IsValidDate(*r.HireDate); ok {
			hireDate = &d
		}
	}

	var manager *int
	if r.ManagerEmployeeNumber != nil {
		n := *r.ManagerEmployeeNumber
		manager = &n
	}

	return Employee{
		EmployeeNumber:        r.EmployeeNumber,
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		SocialSecurityNumber:  r.SocialSecurityNumber,
		HireDate:              hireDate,
		ManagerEmployeeNumber: manager,
	}
}

// ToModel maps a storage row to its external representation.
func ToModel(e Employee, companyName string) EmployeeModel {
	var hireDate *string
	if e.HireDate != nil {
		s := e.HireDate.Format(validator.DateLayout)
		hireDate = &s
	}

	var manager *int
	if e.ManagerEmployeeNumber != nil {
		n := *e.ManagerEmployeeNumber
		manager = &n
	}

	return EmployeeModel{
		CompanyName:           companyName,
		EmployeeNumber:        e.EmployeeNumber,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		SocialSecurityNumber:  e.SocialSecurityNumber,
		HireDate:              hireDate,
		ManagerEmployeeNumber: manager,
	}
}

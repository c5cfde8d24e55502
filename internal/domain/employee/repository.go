package employee

import "context"

// EmployeeRepository is company-scoped access to the employees table. Every
// lookup skips soft-deleted rows except LastEmployeeNumberForCompany. Single-row
// lookups return a nil employee and a nil error when nothing matches.
type EmployeeRepository interface {
	List(ctx context.Context, companyID int64) ([]Employee, error)
	ListByLastName(ctx context.Context, companyID int64, lastName string) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByEmployeeNumber(ctx context.Context, companyID int64, employeeNumber int) (*Employee, error)
	ListByManagerNumber(ctx context.Context, companyID int64, managerEmployeeNumber int) ([]Employee, error)

	// LastEmployeeNumberForCompany includes deleted rows; numbers are never reused.
	LastEmployeeNumberForCompany(ctx context.Context, companyID int64) (int, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Remove(ctx context.Context, id int64) error
}

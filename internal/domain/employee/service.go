package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations. Companies are
// addressed by name and employees by their per-company employee number.
type EmployeeService interface {
	// GetEmployeesByCompanyName lists live employees ordered by employee number
	GetEmployeesByCompanyName(ctx context.Context, companyName string) ([]EmployeeModel, error)

	// GetEmployeesByLastName lists live employees with an exact last-name match
	GetEmployeesByLastName(ctx context.Context, companyName, lastName string) ([]EmployeeModel, error)

	// GetEmployeeByEmployeeNumber retrieves a single live employee
	GetEmployeeByEmployeeNumber(ctx context.Context, companyName string, employeeNumber int) (EmployeeModel, error)

	// GetDirectReports lists live employees whose manager is employeeNumber
	GetDirectReports(ctx context.Context, companyName string, employeeNumber int) ([]EmployeeModel, error)

	// CreateEmployee assigns the next employee number and persists the employee
	CreateEmployee(ctx context.Context, req EmployeeModel) (EmployeeModel, error)

	// UpdateEmployee overwrites the mutable fields of an existing employee
	UpdateEmployee(ctx context.Context, req EmployeeModel) (EmployeeModel, error)

	// RemoveEmployee soft deletes an employee
	RemoveEmployee(ctx context.Context, companyName string, employeeNumber int) error
}

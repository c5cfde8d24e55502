package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/employee"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/apperror"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, company_id, employee_number, first_name, last_name, social_security_number,
			hire_date, manager_employee_number, deleted, last_modified_at`

type employeeRepositoryImpl struct {
	db  database.Querier
	now func() time.Time
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, companyID int64) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND deleted = FALSE
	`
	return e.queryEmployees(ctx, "list employees", query, companyID)
}

// ListByLastName implements employee.EmployeeRepository. The match is exact and case-sensitive.
func (e *employeeRepositoryImpl) ListByLastName(ctx context.Context, companyID int64, lastName string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND last_name = $2 AND deleted = FALSE
	`
	return e.queryEmployees(ctx, "list employees by last name", query, companyID, lastName)
}

// ListByManagerNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByManagerNumber(ctx context.Context, companyID int64, managerEmployeeNumber int) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND manager_employee_number = $2 AND deleted = FALSE
	`
	return e.queryEmployees(ctx, "list employees by manager", query, companyID, managerEmployeeNumber)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted = FALSE
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Store("get employee by id", err)
	}
	return &found, nil
}

// GetByEmployeeNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeNumber(ctx context.Context, companyID int64, employeeNumber int) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND employee_number = $2 AND deleted = FALSE
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, companyID, employeeNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Store("get employee by number", err)
	}
	return &found, nil
}

// LastEmployeeNumberForCompany implements employee.EmployeeRepository.
// Deleted rows are counted on purpose.
func (e *employeeRepositoryImpl) LastEmployeeNumberForCompany(ctx context.Context, companyID int64) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COALESCE(MAX(employee_number), 0)
		FROM employees
		WHERE company_id = $1
	`

	var last int
	if err := q.QueryRow(ctx, query, companyID).Scan(&last); err != nil {
		return 0, apperror.Store("last employee number", err)
	}
	return last, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			company_id, employee_number, first_name, last_name, social_security_number,
			hire_date, manager_employee_number, deleted, last_modified_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, FALSE, $8
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.EmployeeNumber, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.SocialSecurityNumber, newEmployee.HireDate, newEmployee.ManagerEmployeeNumber, e.now(),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeNumberConflict
		}
		return employee.Employee{}, apperror.Store("create employee", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. Only the mutable columns are
// written; id, company_id, employee_number and deleted are left alone.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, social_security_number = $3,
			hire_date = $4, manager_employee_number = $5, last_modified_at = $6
		WHERE id = $7 AND deleted = FALSE
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.SocialSecurityNumber,
		emp.HireDate, emp.ManagerEmployeeNumber, e.now(), emp.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, apperror.Store("update employee", err)
	}
	return updated, nil
}

// Remove implements employee.EmployeeRepository. Rows are flagged, never deleted.
func (e *employeeRepositoryImpl) Remove(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted = TRUE, last_modified_at = $1
		WHERE id = $2 AND deleted = FALSE
	`

	tag, err := q.Exec(ctx, query, e.now(), id)
	if err != nil {
		return apperror.Store("remove employee", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (e *employeeRepositoryImpl) queryEmployees(ctx context.Context, op, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Store(op, err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, apperror.Store(op, err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Store(op, err)
	}

	return employees, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
		&emp.SocialSecurityNumber, &emp.HireDate, &emp.ManagerEmployeeNumber,
		&emp.Deleted, &emp.LastModifiedAt,
	)
	return emp, err
}

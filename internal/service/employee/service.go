package employee

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/company"
	"github.com/cmlabs-hris/hr-data-service/internal/domain/employee"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/database"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/events"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	tx           database.Transactor
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	publisher    events.Publisher
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	publisher events.Publisher,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		publisher:    publisher,
	}
}

// GetEmployeesByCompanyName implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeesByCompanyName(ctx context.Context, companyName string) ([]employee.EmployeeModel, error) {
	companyData, err := s.resolveCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, companyData.ID)
	if err != nil {
		return nil, err
	}

	return toSortedModels(employees, companyData.Name), nil
}

// GetEmployeesByLastName implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeesByLastName(ctx context.Context, companyName, lastName string) ([]employee.EmployeeModel, error) {
	companyData, err := s.resolveCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByLastName(ctx, companyData.ID, lastName)
	if err != nil {
		return nil, err
	}

	return toSortedModels(employees, companyData.Name), nil
}

// GetEmployeeByEmployeeNumber implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByEmployeeNumber(ctx context.Context, companyName string, employeeNumber int) (employee.EmployeeModel, error) {
	companyData, err := s.resolveCompany(ctx, companyName)
	if err != nil {
		return employee.EmployeeModel{}, err
	}

	found, err := s.employeeRepo.GetByEmployeeNumber(ctx, companyData.ID, employeeNumber)
	if err != nil {
		return employee.EmployeeModel{}, err
	}
	if found == nil {
		return employee.EmployeeModel{}, employee.ErrEmployeeNotFound
	}

	return employee.ToModel(*found, companyData.Name), nil
}

// GetDirectReports implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetDirectReports(ctx context.Context, companyName string, employeeNumber int) ([]employee.EmployeeModel, error) {
	companyData, err := s.resolveCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}

	manager, err := s.employeeRepo.GetByEmployeeNumber(ctx, companyData.ID, employeeNumber)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, employee.ErrEmployeeNotFound
	}

	reports, err := s.employeeRepo.ListByManagerNumber(ctx, companyData.ID, employeeNumber)
	if err != nil {
		return nil, err
	}

	return toSortedModels(reports, companyData.Name), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.EmployeeModel) (employee.EmployeeModel, error) {
	if err := req.ValidateForCreate(); err != nil {
		return employee.EmployeeModel{}, err
	}

	var (
		created     employee.Employee
		companyName string
	)
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		companyData, err := s.resolveCompany(txCtx, req.CompanyName)
		if err != nil {
			return err
		}
		companyName = companyData.Name

		if req.ManagerEmployeeNumber != nil {
			if err := s.ensureManager(txCtx, companyData.ID, *req.ManagerEmployeeNumber); err != nil {
				return err
			}
		}

		// Read-then-increment is not serialized; a concurrent create that picks the
		// same number fails on the (company_id, employee_number) unique index.
		last, err := s.employeeRepo.LastEmployeeNumberForCompany(txCtx, companyData.ID)
		if err != nil {
			return err
		}

		newEmployee := req.ToEntity()
		newEmployee.CompanyID = companyData.ID
		newEmployee.EmployeeNumber = last + 1

		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeModel{}, err
	}

	slog.Info("employee created", "company_name", companyName, "employee_number", created.EmployeeNumber)
	s.publisher.Publish(ctx, events.NewEmployeeEvent(events.EmployeeCreated, companyName, created.EmployeeNumber))

	return employee.ToModel(created, companyName), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.EmployeeModel) (employee.EmployeeModel, error) {
	if err := req.ValidateForUpdate(); err != nil {
		return employee.EmployeeModel{}, err
	}
	if req.ManagerEmployeeNumber != nil && *req.ManagerEmployeeNumber == req.EmployeeNumber {
		return employee.EmployeeModel{}, employee.ErrSelfManaged
	}

	var (
		updated     employee.Employee
		companyName string
	)
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		companyData, err := s.resolveCompany(txCtx, req.CompanyName)
		if err != nil {
			return err
		}
		companyName = companyData.Name

		existing, err := s.employeeRepo.GetByEmployeeNumber(txCtx, companyData.ID, req.EmployeeNumber)
		if err != nil {
			return err
		}
		if existing == nil {
			return employee.ErrEmployeeNotFound
		}

		if req.ManagerEmployeeNumber != nil {
			if err := s.ensureManager(txCtx, companyData.ID, *req.ManagerEmployeeNumber); err != nil {
				return err
			}
		}

		existing.ApplyChanges(req.ToEntity())
		updated, err = s.employeeRepo.Update(txCtx, *existing)
		return err
	})
	if err != nil {
		return employee.EmployeeModel{}, err
	}

	slog.Info("employee updated", "company_name", companyName, "employee_number", updated.EmployeeNumber)
	s.publisher.Publish(ctx, events.NewEmployeeEvent(events.EmployeeUpdated, companyName, updated.EmployeeNumber))

	return employee.ToModel(updated, companyName), nil
}

// RemoveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RemoveEmployee(ctx context.Context, companyName string, employeeNumber int) error {
	companyData, err := s.resolveCompany(ctx, companyName)
	if err != nil {
		return err
	}

	existing, err := s.employeeRepo.GetByEmployeeNumber(ctx, companyData.ID, employeeNumber)
	if err != nil {
		return err
	}
	if existing == nil {
		return employee.ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Remove(ctx, existing.ID); err != nil {
		return err
	}

	slog.Info("employee removed", "company_name", companyData.Name, "employee_number", employeeNumber)
	s.publisher.Publish(ctx, events.NewEmployeeEvent(events.EmployeeRemoved, companyData.Name, employeeNumber))

	return nil
}

func (s *EmployeeServiceImpl) resolveCompany(ctx context.Context, name string) (*company.Company, error) {
	if validator.IsEmpty(name) {
		return nil, company.ErrCompanyNameRequired
	}

	companyData, err := s.companyRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if companyData == nil {
		return nil, company.ErrCompanyNotFound
	}
	return companyData, nil
}

func (s *EmployeeServiceImpl) ensureManager(ctx context.Context, companyID int64, managerNumber int) error {
	manager, err := s.employeeRepo.GetByEmployeeNumber(ctx, companyID, managerNumber)
	if err != nil {
		return err
	}
	if manager == nil {
		return employee.ErrInvalidManager
	}
	return nil
}

func toSortedModels(employees []employee.Employee, companyName string) []employee.EmployeeModel {
	slices.SortFunc(employees, func(a, b employee.Employee) int {
		return a.EmployeeNumber - b.EmployeeNumber
	})

	models := make([]employee.EmployeeModel, 0, len(employees))
	for _, e := range employees {
		models = append(models, employee.ToModel(e, companyName))
	}
	return models
}

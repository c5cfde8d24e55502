package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/employee"
	"github.com/cmlabs-hris/hr-data-service/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetDirectReports(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	RemoveEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler. An optional lastName query narrows
// the list to exact matches.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	companyName := pathParam(r, "companyName")

	var (
		result []employee.EmployeeModel
		err    error
	)
	if lastName := r.URL.Query().Get("lastName"); lastName != "" {
		result, err = h.employeeService.GetEmployeesByLastName(r.Context(), companyName, lastName)
	} else {
		result, err = h.employeeService.GetEmployeesByCompanyName(r.Context(), companyName)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	result, err := h.employeeService.GetEmployeeByEmployeeNumber(r.Context(), pathParam(r, "companyName"), employeeNumber)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDirectReports implements EmployeeHandler
func (h *employeeHandlerImpl) GetDirectReports(w http.ResponseWriter, r *http.Request) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	result, err := h.employeeService.GetDirectReports(r.Context(), pathParam(r, "companyName"), employeeNumber)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.EmployeeModel
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyName = pathParam(r, "companyName")

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("failed to create employee", "company_name", req.CompanyName, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, employeeLocation(r, result.CompanyName, result.EmployeeNumber), "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	var req employee.EmployeeModel
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyName = pathParam(r, "companyName")
	req.EmployeeNumber = employeeNumber

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("failed to update employee", "company_name", req.CompanyName, "employee_number", employeeNumber, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// RemoveEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	if err := h.employeeService.RemoveEmployee(r.Context(), pathParam(r, "companyName"), employeeNumber); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee removed successfully", nil)
}

package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-data-service/internal/domain/company"
	"github.com/cmlabs-hris/hr-data-service/internal/domain/employee"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/apperror"
	"github.com/cmlabs-hris/hr-data-service/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// A manager number inside the request body is a bad reference, not a missing resource.
	case errors.Is(err, employee.ErrInvalidManager):
		BadRequest(w, "Manager employee number does not match a live employee", map[string]string{
			"managerEmployeeNumber": "no live employee with this number in the company",
		})

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")
	case errors.Is(err, company.ErrCompanyHasEmployees):
		Conflict(w, "Company still has employees")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberConflict):
		Conflict(w, "Employee number was issued concurrently, retry the request")

	// Anything else falls back to its kind
	case errors.Is(err, apperror.ErrValidation):
		ValidationError(w, err.Error(), nil)
	case errors.Is(err, apperror.ErrNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		Conflict(w, err.Error())

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

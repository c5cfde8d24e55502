package company

import (
	"fmt"

	"github.com/cmlabs-hris/hr-data-service/internal/pkg/apperror"
)

var (
	ErrCompanyNotFound     = fmt.Errorf("company not found: %w", apperror.ErrNotFound)
	ErrCompanyNameExists   = fmt.Errorf("company name already exists: %w", apperror.ErrConflict)
	ErrCompanyHasEmployees = fmt.Errorf("company still has employees: %w", apperror.ErrConflict)
	ErrCompanyNameRequired = fmt.Errorf("company name is required: %w", apperror.ErrValidation)
)

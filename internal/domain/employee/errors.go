package employee

import (
	"fmt"

	"github.com/cmlabs-hris/hr-data-service/internal/pkg/apperror"
)

var (
	ErrEmployeeNotFound       = fmt.Errorf("employee not found: %w", apperror.ErrNotFound)
	ErrInvalidManager         = fmt.Errorf("invalid manager employee number: %w", apperror.ErrNotFound)
	ErrEmployeeNumberConflict = fmt.Errorf("employee number already issued: %w", apperror.ErrConflict)
	ErrSelfManaged            = fmt.Errorf("employee cannot be their own manager: %w", apperror.ErrValidation)
)

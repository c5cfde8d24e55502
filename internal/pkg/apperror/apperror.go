// Package apperror holds the error kinds every domain error is classified under.
// Domain packages wrap one of these with %w so callers can branch on the kind
// without knowing the concrete sentinel.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStore      = errors.New("store failure")
)

// Store wraps an unexpected persistence failure so it matches ErrStore while
// keeping the driver error reachable through errors.Is/As.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStore, err))
}

// Kind returns the kind err is classified under, or nil when it matches none.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return ErrValidation
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrConflict):
		return ErrConflict
	case errors.Is(err, ErrStore):
		return ErrStore
	default:
		return nil
	}
}

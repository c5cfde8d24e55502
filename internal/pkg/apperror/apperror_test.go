package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_WrapsKindAndCause(t *testing.T) {
	err := Store("list employees", context.Canceled)

	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "list employees")
}

func TestStore_NilPassthrough(t *testing.T) {
	assert.NoError(t, Store("noop", nil))
}

func TestKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"validation", fmt.Errorf("company name is required: %w", ErrValidation), ErrValidation},
		{"not found", fmt.Errorf("employee not found: %w", ErrNotFound), ErrNotFound},
		{"conflict", fmt.Errorf("wrapped: %w", fmt.Errorf("dup: %w", ErrConflict)), ErrConflict},
		{"store", Store("create", errors.New("connection reset")), ErrStore},
		{"unclassified", errors.New("boom"), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Kind(c.err))
		})
	}
}

package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"invalid argument", InvalidArgument("n_points", -5, "a positive integer"), ErrInvalidArgument, "invalid argument: n_points must be a positive integer, got -5"},
		{"missing column", MissingColumn("nonexistent"), ErrMissingColumn, `missing column: column "nonexistent" is missing`},
		{"empty input", EmptyInput("growth share"), ErrEmptyInput, "empty input: growth share requires at least one row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.EqualError(t, tt.err, tt.msg)
			for _, other := range []error{ErrInvalidArgument, ErrMissingColumn, ErrGeneration, ErrEmptyInput} {
				if other != tt.kind {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestGenerationWrapsCause(t *testing.T) {
	cause := errors.New("source exhausted")
	err := fmt.Errorf("run: %w", Generation(cause))

	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, cause)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, cause, appErr.Unwrap())
	assert.Contains(t, err.Error(), "source exhausted")
}

func TestWithContext(t *testing.T) {
	err := MissingColumn("price")
	assert.Equal(t, "price", err.Context["column"])

	err.WithContext("table", "series")
	assert.Len(t, err.Context, 2)
}

package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	ve := apperrors.NewValidationError()
	ve.Add("amount", "Amount must be greater than 0")
	ve.Add("date", "Date is required")

	wrapped := fmt.Errorf("add transaction: %w", ve)

	assert.True(t, errors.Is(wrapped, apperrors.ErrValidation))
	assert.False(t, errors.Is(wrapped, apperrors.ErrNotFound))

	got, ok := apperrors.AsValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"Amount must be greater than 0", "Date is required"}, got.Messages())
	assert.Contains(t, got.Error(), "Amount must be greater than 0; Date is required")
}

func TestValidationError_HasErrors(t *testing.T) {
	var nilErr *apperrors.ValidationError
	assert.False(t, nilErr.HasErrors())
	assert.False(t, apperrors.NewValidationError().HasErrors())
	assert.True(t, apperrors.NewValidationError(apperrors.FieldError{Field: "type", Message: "x"}).HasErrors())
}

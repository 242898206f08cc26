package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentRangeMessage(t *testing.T) {
	err := NewArgumentRange("year", 1900, 2199, 2200)
	assert.Equal(t, "year must be in the range 1900..=2199, but 2200 was provided", err.Error())

	err.Detail = "February 2005 has 28 days"
	assert.Equal(t, "year must be in the range 1900..=2199, but 2200 was provided: February 2005 has 28 days", err.Error())
}

func TestAsArgumentRange(t *testing.T) {
	wrapped := fmt.Errorf("building date: %w", NewArgumentRange("day", 1, 31, 32))

	ar, err := AsArgumentRange(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "day", ar.Name)
	assert.EqualValues(t, 32, ar.Value)

	_, err = AsArgumentRange(ErrInvalidDate)
	assert.ErrorIs(t, err, ErrDifferentVariant)
}

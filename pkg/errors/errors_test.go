package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("podium.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "podium.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "podium.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("podium.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: podium.yaml: no such file", err.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("devices[1].id", "duplicate device id", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "devices[1].id", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate device id")
}

func TestInvalidDeviceContextMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewInvalidDeviceContextError("viewport_width", 0.0, "must be greater than zero")

	var ctxErr *InvalidDeviceContextError
	require.ErrorAs(t, err, &ctxErr)
	require.Equal(t, "viewport_width", ctxErr.Field)
	require.ErrorIs(t, err, ErrInvalidDeviceContext)
	require.Contains(t, err.Error(), "viewport_width=0")

	wrapped := fmt.Errorf("resolve: %w", err)
	require.ErrorIs(t, wrapped, ErrInvalidDeviceContext)
}

func TestInvalidDeviceContextWithoutField(t *testing.T) {
	t.Parallel()

	err := NewInvalidDeviceContextError("", nil, "empty sample")
	require.Equal(t, "invalid device context: empty sample", err.Error())
}

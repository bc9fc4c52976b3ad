package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("invalid hex digit")
	err := NewParseError("#zz0000", underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "#zz0000", parseErr.Input)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "#zz0000")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("invoice.accent_color", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "invoice.accent_color", validationErr.Field)
	require.Contains(t, validationErr.Message, "hex colour")
}

func TestRenderErrorIncludesVariantContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no strategy registered")
	err := NewRenderError("sidebar", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "sidebar", renderErr.Variant)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestStoreErrorIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewStoreError("/tmp/users.json", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "/tmp/users.json", storeErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}

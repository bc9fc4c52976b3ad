package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

func TestExpandEmitsLightBaseDarkPerColour(t *testing.T) {
	t.Parallel()

	out, err := Expand([]string{"#0f172a"})
	require.NoError(t, err)
	require.Len(t, out, 3)

	// 0x0f=15 -> 18, 0x17=23 -> 27, 0x2a=42 -> 50 when lightened;
	// 12, 19, 34 when darkened.
	require.Equal(t, []string{"#121b32", "#0f172a", "#0c1322"}, out)
}

func TestExpandPreservesFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	out, err := Expand([]string{"#4338ca", "#3730a3", "#4338ca"})
	require.NoError(t, err)

	// The repeated base contributes nothing new.
	require.Len(t, out, 6)
	seen := make(map[string]struct{})
	for _, c := range out {
		_, dup := seen[c]
		require.False(t, dup, "duplicate swatch %s", c)
		seen[c] = struct{}{}
	}
	require.Equal(t, "#3730a3", out[4], "stable positions: base of second colour")
}

// Multiplicative scaling leaves pure black untouched in both directions, so
// black expands to a single swatch after deduplication.
func TestExpandBlackCollapsesToSingleSwatch(t *testing.T) {
	t.Parallel()

	out, err := Expand([]string{"#000000"})
	require.NoError(t, err)
	require.Equal(t, []string{"#000000"}, out)
}

// Lightening pure white clamps back into white; only the darken variant
// survives deduplication.
func TestExpandWhiteKeepsTwoSwatches(t *testing.T) {
	t.Parallel()

	out, err := Expand([]string{"#ffffff"})
	require.NoError(t, err)
	require.Equal(t, []string{"#ffffff", "#d1d1d1"}, out)
}

func TestExpandAcceptsUppercaseInput(t *testing.T) {
	t.Parallel()

	upper, err := Expand([]string{"#0F172A"})
	require.NoError(t, err)
	lower, err := Expand([]string{"#0f172a"})
	require.NoError(t, err)
	require.Equal(t, lower, upper)
}

func TestExpandRejectsMalformedColour(t *testing.T) {
	t.Parallel()

	_, err := Expand([]string{"#0f172a", "salmon"})
	require.Error(t, err)

	var parseErr *facturaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "salmon", parseErr.Input)
}

func TestLightenAndDarkenClamp(t *testing.T) {
	t.Parallel()

	light, err := Lighten("#f0f0f0")
	require.NoError(t, err)
	require.Equal(t, "#ffffff", light)

	dark, err := Darken("#010101")
	require.NoError(t, err)
	require.Equal(t, "#010101", dark)
}

func TestExpandEmptyInput(t *testing.T) {
	t.Parallel()

	out, err := Expand(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

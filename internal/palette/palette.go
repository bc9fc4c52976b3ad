// Package palette derives accent-colour swatches from a template's base
// palette: a lightened and a darkened variant per base colour, deduplicated
// while keeping first-occurrence order so swatch positions stay stable.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

// shadeStep is the per-channel scale applied when lightening or darkening.
const shadeStep = 0.18

// Expand emits, for every base colour, its lightened variant, the original
// and its darkened variant, in that order. Input hex is case-insensitive;
// output is lowercase #rrggbb. Duplicates collapse to their first occurrence
// (darkening pure black yields black again, so black expands to two swatches).
func Expand(base []string) ([]string, error) {
	out := make([]string, 0, len(base)*3)
	seen := make(map[string]struct{}, len(base)*3)

	push := func(hex string) {
		if _, dup := seen[hex]; dup {
			return
		}
		seen[hex] = struct{}{}
		out = append(out, hex)
	}

	for _, raw := range base {
		c, err := colorful.Hex(raw)
		if err != nil {
			return nil, facturaerrors.NewParseError(raw, err)
		}
		push(scale(c, 1+shadeStep))
		push(scale(c, 1))
		push(scale(c, 1-shadeStep))
	}

	return out, nil
}

// Lighten returns the +18% variant of a single colour.
func Lighten(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", facturaerrors.NewParseError(hex, err)
	}
	return scale(c, 1+shadeStep), nil
}

// Darken returns the -18% variant of a single colour.
func Darken(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", facturaerrors.NewParseError(hex, err)
	}
	return scale(c, 1-shadeStep), nil
}

// scale multiplies each RGB channel independently, rounding and clamping to
// [0, 255].
func scale(c colorful.Color, factor float64) string {
	r := scaleChannel(c.R, factor)
	g := scaleChannel(c.G, factor)
	b := scaleChannel(c.B, factor)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func scaleChannel(v, factor float64) uint8 {
	channel := math.Round(v*255) * factor
	scaled := math.Round(channel)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

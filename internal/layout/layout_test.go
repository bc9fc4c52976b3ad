package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/template"
	"github.com/facturakit/facturakit/internal/ui/components"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

func TestRenderEveryTemplate(t *testing.T) {
	t.Parallel()

	for _, tpl := range template.All() {
		tpl := tpl
		t.Run(tpl.ID, func(t *testing.T) {
			t.Parallel()

			inv := invoice.Sample()
			inv.TemplateID = tpl.ID
			inv.AccentColor = ""

			out, err := Render(&inv, Options{})
			require.NoError(t, err)
			require.NotEmpty(t, out)
			require.Contains(t, out, "#"+inv.Number)
			require.Contains(t, out, "Servicio profesional")
			require.Contains(t, out, "Cliente Demo")

			for _, line := range strings.Split(out, "\n") {
				require.LessOrEqual(t, lipgloss.Width(line), components.DefaultDocumentWidth)
			}
		})
	}
}

func TestRenderKeepsHeaderLinesIntact(t *testing.T) {
	t.Parallel()

	wants := []string{
		"Tu Empresa S.L.",
		"facturas@empresa.com · +34 600 000 000",
	}
	for _, tpl := range template.All() {
		tpl := tpl
		for _, compact := range []bool{false, true} {
			compact := compact
			name := tpl.ID
			if compact {
				name += "-compact"
			}
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				inv := invoice.Sample()
				inv.TemplateID = tpl.ID
				inv.AccentColor = ""

				out, err := Render(&inv, Options{Compact: compact})
				require.NoError(t, err)
				for _, want := range wants {
					require.True(t, hasLineContaining(out, want),
						"%q was wrapped across lines:\n%s", want, out)
				}
			})
		}
	}
}

func hasLineContaining(out, want string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}

func TestRenderUsesConfiguredCurrencySymbol(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	out, err := Render(&inv, Options{CurrencySymbol: "$"})
	require.NoError(t, err)
	require.Contains(t, out, "484,00 $")
	require.NotContains(t, out, "€")
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	first, err := Render(&inv, Options{})
	require.NoError(t, err)
	second, err := Render(&inv, Options{})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRenderShowsComputedTotals(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	out, err := Render(&inv, Options{})
	require.NoError(t, err)

	// 1x300 + 2x50 = 400, 21% IVA on 400 = 84, total 484.
	require.Contains(t, out, "400,00 €")
	require.Contains(t, out, "84,00 €")
	require.Contains(t, out, "484,00 €")
	require.Contains(t, out, "IVA (21%)")
}

func TestRenderRecomputesLineAmounts(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	inv.Items = []invoice.LineItem{
		{ID: "it-1", Description: "Consultoría", Quantity: 3, UnitPrice: 2},
	}

	out, err := Render(&inv, Options{})
	require.NoError(t, err)
	require.Contains(t, out, "6,00 €")
}

func TestRenderCompactIsNarrower(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	full, err := Render(&inv, Options{})
	require.NoError(t, err)
	compact, err := Render(&inv, Options{Compact: true})
	require.NoError(t, err)

	widest := func(out string) int {
		w := 0
		for _, line := range strings.Split(out, "\n") {
			if lw := lipgloss.Width(line); lw > w {
				w = lw
			}
		}
		return w
	}
	require.Equal(t, components.DefaultDocumentWidth, widest(full))
	require.Equal(t, components.CompactDocumentWidth, widest(compact))
}

func TestRenderAccentOverridesTemplateDefault(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	inv.AccentColor = "#e11d48"

	out, err := Render(&inv, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	inv.TemplateID = "ghost"

	_, err := Render(&inv, Options{})
	require.Error(t, err)

	var renderErr *facturaerrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "ghost", renderErr.Variant)
}

func TestRenderVariantUnknownTag(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	_, err := RenderVariant(&inv, template.Variant("spiral"), "#0f172a", Options{})
	require.Error(t, err)

	var renderErr *facturaerrors.RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestMustRenderPanicsOnUnknownTemplate(t *testing.T) {
	t.Parallel()

	inv := invoice.Sample()
	inv.TemplateID = "ghost"
	require.Panics(t, func() {
		MustRender(&inv, Options{})
	})
}

func TestVariantsCoverCatalog(t *testing.T) {
	t.Parallel()

	registered := make(map[template.Variant]bool)
	for _, v := range Variants() {
		registered[v] = true
	}
	for _, tpl := range template.All() {
		require.True(t, registered[tpl.LayoutVariant], "variant %s has no strategy", tpl.LayoutVariant)
	}
	require.Len(t, registered, 10)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		register(template.VariantLeftTag, renderLeftTag)
	})
}

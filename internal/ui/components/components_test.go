package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func plainContext() RenderContext {
	return RenderContext{Theme: DefaultTheme(), Width: 40}
}

func TestTextRendersContent(t *testing.T) {
	txt := NewText("Factura")
	require.Contains(t, txt.ViewWithContext(plainContext()), "Factura")
	require.Equal(t, "Factura", txt.Content())
}

func TestVStackJoinsChildrenWithGap(t *testing.T) {
	stack := VStack(NewText("a"), NewText("b")).WithGap(1)
	out := stack.ViewWithContext(plainContext())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "a")
	require.Contains(t, lines[2], "b")
}

func TestHStackJoinsChildrenHorizontally(t *testing.T) {
	stack := HStack(NewText("left"), NewText("right")).WithGap(2)
	out := stack.ViewWithContext(plainContext())

	require.Equal(t, 1, len(strings.Split(out, "\n")))
	require.Contains(t, out, "left")
	require.Contains(t, out, "right")
}

func TestStackSkipsNilChildren(t *testing.T) {
	stack := VStack(NewText("only"), nil)
	out := stack.ViewWithContext(plainContext())
	require.Contains(t, out, "only")
}

func TestDividerFillsContextWidth(t *testing.T) {
	out := NewDivider().ViewWithContext(plainContext())
	require.Equal(t, 40, lipgloss.Width(out))
}

func TestDividerExplicitWidthWins(t *testing.T) {
	out := NewDivider().WithWidth(10).ViewWithContext(plainContext())
	require.Equal(t, 10, lipgloss.Width(out))
}

func TestSpacerDimensions(t *testing.T) {
	require.Equal(t, "", NewSpacer(0, 0).View())
	require.Equal(t, "   ", HorizontalSpacer(3).View())
	require.Equal(t, 2, len(strings.Split(VerticalSpacer(2).View(), "\n")))
}

func TestBadgeCarriesText(t *testing.T) {
	badge := AccentBadge("FACTURA", "#e11d48")
	require.Contains(t, badge.ViewWithContext(plainContext()), "FACTURA")
	require.Equal(t, "FACTURA", badge.Text())
}

func TestContainerAppliesWidth(t *testing.T) {
	container := NewContainer(NewText("x")).
		WithBorder(lipgloss.RoundedBorder()).
		WithWidth(30)
	out := container.ViewWithContext(plainContext())

	for _, line := range strings.Split(out, "\n") {
		require.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestTableAlignsAndFlexes(t *testing.T) {
	table := NewTable(
		Column{Title: "Descripción", Flex: true},
		Column{Title: "Cant.", Align: lipgloss.Right},
		Column{Title: "Importe", Align: lipgloss.Right},
	)
	table.AddRow("Servicio profesional", "1", "300,00 €")
	table.AddRow("Soporte", "2", "100,00 €")

	out := table.ViewWithContext(plainContext())
	lines := strings.Split(out, "\n")

	// header, rule, two rows
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "Descripción")
	require.Contains(t, lines[2], "Servicio profesional")
	require.Contains(t, lines[3], "Soporte")
	require.Equal(t, 2, table.Rows())
}

func TestTableTruncatesOverflowingFlexCell(t *testing.T) {
	table := NewTable(
		Column{Title: "Descripción", Flex: true},
		Column{Title: "Importe", Align: lipgloss.Right},
	)
	table.AddRow(strings.Repeat("x", 100), "1,00 €")

	out := table.ViewWithContext(RenderContext{Theme: DefaultTheme(), Width: 30})
	require.Contains(t, out, "…")
}

func TestSplitKeepsSidesOnOneRow(t *testing.T) {
	out := NewSplit(NewText("left"), NewText("right")).
		ViewWithContext(plainContext())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	require.Equal(t, 40, lipgloss.Width(lines[0]))
	require.True(t, strings.HasSuffix(lines[0], "right"))
}

func TestSplitStacksWhenSidesOverflow(t *testing.T) {
	left := "Factura proforma con numeración larga"
	right := "Tu Empresa S.L."
	out := NewSplit(NewText(left), NewText(right)).
		ViewWithContext(plainContext())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, left, strings.TrimRight(lines[0], " "))
	require.True(t, strings.HasSuffix(lines[1], right))
	for _, line := range lines {
		require.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestRenderContextWithWidth(t *testing.T) {
	ctx := DefaultContext()
	require.Equal(t, DefaultDocumentWidth, ctx.Width)
	require.Equal(t, 20, ctx.WithWidth(20).Width)
	require.Equal(t, DefaultDocumentWidth, ctx.Width)
}

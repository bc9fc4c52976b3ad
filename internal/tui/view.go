package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/invoice"
)

// View renders the form beside the live preview.
func (m Model) View() string {
	form := formStyle.Render(m.renderForm())
	preview := m.editor.Preview()
	return lipgloss.JoinHorizontal(lipgloss.Top, form, preview)
}

func (m Model) renderForm() string {
	var b strings.Builder

	tpl := m.editor.Template()
	b.WriteString(titleStyle.Render("Factura · " + tpl.DisplayName + " (" + tpl.VibeLabel + ")"))
	b.WriteString("\n")
	b.WriteString(m.renderSwatches())
	b.WriteString("\n\n")

	draft := m.editor.Draft()
	for i, f := range m.fields() {
		line := f.Label + ": "
		if m.mode == ModeEdit && i == m.cursor {
			line += m.input.View()
		} else {
			line += f.Value(draft)
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString(labelStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.mode == ModeLogo {
		b.WriteString("\n")
		b.WriteString(selectedStyle.Render("Logotipo: " + m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderTotals())

	if m.status != "" {
		style := statusStyle
		if strings.Contains(m.status, "No se pudo") {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑↓ campo · enter editar · t plantilla · c acento · a/d concepto · L logo · q salir"))
	return b.String()
}

// renderSwatches shows the expanded palette, marking the active accent.
func (m Model) renderSwatches() string {
	current := m.editor.Draft().AccentColor

	var b strings.Builder
	for _, hex := range m.editor.AccentChoices() {
		mark := "■"
		if hex == current {
			mark = "▣"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(mark))
		b.WriteString(" ")
	}
	return " " + strings.TrimRight(b.String(), " ")
}

func (m Model) renderTotals() string {
	t := m.editor.Totals()
	symbol := m.editor.CurrencySymbol()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Subtotal  " + invoice.FormatMoneyWith(t.Subtotal, symbol)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Total     " + invoice.FormatMoneyWith(t.Total, symbol)))
	b.WriteString("\n")
	return b.String()
}

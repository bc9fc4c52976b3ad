package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/layout"
	"github.com/facturakit/facturakit/internal/palette"
	"github.com/facturakit/facturakit/internal/template"
	"github.com/facturakit/facturakit/internal/ui/components"
)

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	var thumbnails bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the template catalog",
		Long: `List every template with its palette. With --thumbnails each template
also renders a compact preview of the sample invoice.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, thumbnails)
		},
	}

	cmd.Flags().BoolVarP(&thumbnails, "thumbnails", "p", false, "Render a compact preview per template")

	return cmd
}

func runTemplates(cmd *cobra.Command, thumbnails bool) error {
	out := cmd.OutOrStdout()

	if !thumbnails {
		for _, tpl := range template.All() {
			fmt.Fprintf(out, "%-11s %-16s %-16s %s\n", tpl.ID, tpl.DisplayName, tpl.VibeLabel, swatches(tpl))
		}
		return nil
	}

	sample := invoice.Sample()
	columns := galleryColumns()

	var row []string
	for _, tpl := range template.All() {
		thumb, err := layout.RenderVariant(&sample, tpl.LayoutVariant, tpl.Accent(), layout.Options{Compact: true})
		if err != nil {
			return err
		}
		caption := fmt.Sprintf("%s · %s %s", tpl.DisplayName, tpl.VibeLabel, swatches(tpl))
		card := lipgloss.JoinVertical(lipgloss.Left, caption, thumb)

		row = append(row, card)
		if len(row) == columns {
			fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGutter(row)...))
			fmt.Fprintln(out)
			row = nil
		}
	}
	if len(row) > 0 {
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGutter(row)...))
	}

	return nil
}

// galleryColumns fits as many compact cards as the terminal allows.
func galleryColumns() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 1
	}
	columns := width / (components.CompactDocumentWidth + 2)
	if columns < 1 {
		return 1
	}
	return columns
}

func joinWithGutter(cards []string) []string {
	out := make([]string, 0, len(cards)*2)
	for i, card := range cards {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, card)
	}
	return out
}

// swatches renders the expanded palette as coloured blocks.
func swatches(tpl template.Template) string {
	colours, err := palette.Expand(tpl.Palette[:])
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, hex := range colours {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■"))
	}
	return b.String()
}

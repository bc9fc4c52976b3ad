package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// Column describes one table column. A flex column absorbs whatever width
// the fixed columns leave over.
type Column struct {
	Title string
	Align lipgloss.Position
	Flex  bool
}

// Table renders rows of plain text cells under a faint header row. Fixed
// columns size to their widest cell; the flex column fills the remaining
// context width and truncates overlong content.
type Table struct {
	BaseComponent
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		BaseComponent: NewBaseComponent(),
		columns:       columns,
	}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return len(t.rows)
}

// View renders the table with the default context.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders header, rule and rows at the context width.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths(ctx.Width)

	headerStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Faint)
	cellStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Muted)
	ruleStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Frame)

	lines := make([]string, 0, len(t.rows)+2)

	headerCells := make([]string, len(t.columns))
	for i, col := range t.columns {
		headerCells[i] = pad(col.Title, widths[i], col.Align)
	}
	lines = append(lines, headerStyle.Render(strings.Join(headerCells, strings.Repeat(" ", columnGap))))

	total := 0
	for _, w := range widths {
		total += w
	}
	total += columnGap * (len(widths) - 1)
	lines = append(lines, ruleStyle.Render(strings.Repeat("─", total)))

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = pad(row[i], widths[i], col.Align)
		}
		lines = append(lines, cellStyle.Render(strings.Join(cells, strings.Repeat(" ", columnGap))))
	}

	return t.ComputeStyle(ctx.Theme).Render(strings.Join(lines, "\n"))
}

// columnWidths sizes fixed columns to content and gives the flex column the
// remaining width, with a floor so it never vanishes.
func (t *Table) columnWidths(available int) []int {
	widths := make([]int, len(t.columns))
	flexIndex := -1

	for i, col := range t.columns {
		width := lipgloss.Width(col.Title)
		for _, row := range t.rows {
			if w := lipgloss.Width(row[i]); w > width {
				width = w
			}
		}
		widths[i] = width
		if col.Flex && flexIndex == -1 {
			flexIndex = i
		}
	}

	if flexIndex == -1 || available <= 0 {
		return widths
	}

	fixed := columnGap * (len(widths) - 1)
	for i, w := range widths {
		if i != flexIndex {
			fixed += w
		}
	}

	remaining := available - fixed
	if remaining < 8 {
		remaining = 8
	}
	widths[flexIndex] = remaining
	return widths
}

// pad aligns content within width, truncating with an ellipsis when needed.
func pad(content string, width int, align lipgloss.Position) string {
	if lipgloss.Width(content) > width {
		content = truncate(content, width)
	}
	gap := width - lipgloss.Width(content)
	if gap <= 0 {
		return content
	}
	if align == lipgloss.Right {
		return strings.Repeat(" ", gap) + content
	}
	return content + strings.Repeat(" ", gap)
}

func truncate(content string, width int) string {
	if width <= 1 {
		return strings.Repeat("…", max(width, 0))
	}
	runes := []rune(content)
	if len(runes) <= width {
		return content
	}
	return string(runes[:width-1]) + "…"
}

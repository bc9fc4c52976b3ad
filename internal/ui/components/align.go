package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/ui"
)

// Aligned places its child within the full context width at the given
// horizontal position. Use it to push a block to the right edge of the
// document.
type Aligned struct {
	child    ui.Renderable
	position lipgloss.Position
}

// NewAligned wraps a child at a horizontal position.
func NewAligned(child ui.Renderable, position lipgloss.Position) *Aligned {
	return &Aligned{child: child, position: position}
}

// AlignRight wraps a child pushed to the right edge.
func AlignRight(child ui.Renderable) *Aligned {
	return NewAligned(child, lipgloss.Right)
}

// View renders with the default context.
func (a *Aligned) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child and pads it to the context width.
func (a *Aligned) ViewWithContext(ctx RenderContext) string {
	content := renderChild(a.child, ctx)
	if ctx.Width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(ctx.Width, a.position, content)
}

// Split renders two children on one row with the second pushed to the right
// edge of the context width. Children taller than one line are top aligned.
// When both sides together are wider than the context, the right child drops
// below the left one, keeping its right alignment, so neither side is ever
// re-wrapped into the other.
type Split struct {
	left  ui.Renderable
	right ui.Renderable
}

// NewSplit creates a split row.
func NewSplit(left, right ui.Renderable) *Split {
	return &Split{left: left, right: right}
}

// View renders with the default context.
func (s *Split) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders both sides separated by whatever width remains.
func (s *Split) ViewWithContext(ctx RenderContext) string {
	left := renderChild(s.left, ctx)
	right := renderChild(s.right, ctx)

	switch {
	case left == "":
		return lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Right, right)
	case right == "":
		return left
	}

	gap := ctx.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < columnGap {
		return lipgloss.JoinVertical(lipgloss.Left,
			left,
			lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Right, right),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a horizontal rule sized to the context width.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider with the default hairline character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// ThickDivider creates a heavy divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}

// DoubleDivider creates a double-line divider.
func DoubleDivider() *Divider {
	return NewDivider().WithChar("═")
}

// View renders the divider with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider at the context width unless an
// explicit width is set.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = DefaultDocumentWidth
	}

	style := d.ComputeStyle(ctx.Theme)
	if len(d.appliers) == 0 {
		style = style.Foreground(ctx.Theme.Frame)
	}
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the divider width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

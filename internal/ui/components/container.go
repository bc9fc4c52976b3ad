package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/ui"
)

// Container is a box holding children with optional border, padding and
// fixed width. It is the foundation for the document page and its panels.
type Container struct {
	BaseComponent
	layout      *Stack
	border      lipgloss.Border
	hasBorder   bool
	borderColor string
	paddingV    int
	paddingH    int
	width       int
}

// NewContainer creates a container with the given children stacked
// vertically.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container and its children. An explicit width
// overrides the context width for the children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	frame := 0
	if c.hasBorder {
		frame = 2
	}

	inner := ctx
	if c.width > 0 {
		inner = ctx.WithWidth(c.width - 2*c.paddingH - frame)
	} else if c.paddingH > 0 || frame > 0 {
		inner = ctx.WithWidth(ctx.Width - 2*c.paddingH - frame)
	}

	content := c.layout.ViewWithContext(inner)

	style := c.ComputeStyle(ctx.Theme)
	if c.hasBorder {
		style = style.BorderStyle(c.border)
		if c.borderColor != "" {
			style = style.BorderForeground(lipgloss.Color(c.borderColor))
		} else {
			style = style.BorderForeground(ctx.Theme.Frame)
		}
	}
	if c.paddingV > 0 || c.paddingH > 0 {
		style = style.Padding(c.paddingV, c.paddingH)
	}
	if c.width > 0 {
		style = style.Width(c.width - frame)
	}

	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	c.hasBorder = true
	return c
}

// WithBorderColor sets the border colour as a hex string.
func (c *Container) WithBorderColor(color string) *Container {
	c.borderColor = color
	return c
}

// WithPadding sets vertical and horizontal padding.
func (c *Container) WithPadding(vertical, horizontal int) *Container {
	c.paddingV = vertical
	c.paddingH = horizontal
	return c
}

// WithWidth fixes the rendered width, border and padding included.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

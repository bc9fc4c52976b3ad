package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/ui"
)

// StyleFunc applies a theme-aware transformation to a lipgloss style. It is
// the core abstraction for styling components without global state.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent provides common styling behaviour. Embed it in component
// structs.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the final style for this component under a theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends theme-aware style transformations.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}

// RenderContext carries the theme and layout width to components during
// rendering. Width propagates from the document root so full-width elements
// (bars, dividers, tables) can size themselves.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns a context with the default theme and the standard
// document width.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme(), Width: DefaultDocumentWidth}
}

// WithWidth returns a copy of the context constrained to the given width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// ContextualRenderable is a component that can receive layout context. Most
// components implement both this and ui.Renderable.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders a child with context when it supports it.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small inline chip, usually filled with the accent colour.
type Badge struct {
	BaseComponent
	text string
}

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
	b.SetStyle(lipgloss.NewStyle().Padding(0, 1))
	return b
}

// AccentBadge creates a badge filled with an accent colour.
func AccentBadge(text, accent string) *Badge {
	return NewBadge(text).WithAppliers(AccentBackground(accent), Bold())
}

// OutlineBadge creates a bordered badge coloured with the accent, used for
// stamp-like marks.
func OutlineBadge(text, accent string) *Badge {
	b := NewBadge(text)
	b.SetStyle(lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Foreground(lipgloss.Color(accent)).
		Bold(true))
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge under the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.text)
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

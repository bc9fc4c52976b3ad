package components

import "github.com/charmbracelet/lipgloss"

// Text is the primitive component for styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text under the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates bold primary-ink text for document headings.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Bold(), Ink())
}

// BodyText creates secondary-colour body text.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Muted())
}

// LabelText creates faint fine-print text for labels.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Faint())
}

// EmphasisText creates bold secondary text for key values.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Bold(), Muted())
}

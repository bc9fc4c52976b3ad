package components

import "github.com/charmbracelet/lipgloss"

// DefaultDocumentWidth is the inner width of a full-size document.
const DefaultDocumentWidth = 76

// CompactDocumentWidth is the inner width of a thumbnail document.
const CompactDocumentWidth = 44

// Theme holds the neutral document colours. Accent colours are not part of
// the theme: they come from the selected template and are applied per
// component.
type Theme struct {
	// Ink is the primary text colour.
	Ink lipgloss.AdaptiveColor
	// Muted is the secondary text colour for values and body copy.
	Muted lipgloss.AdaptiveColor
	// Faint is the tertiary colour for labels and fine print.
	Faint lipgloss.AdaptiveColor
	// Frame is the hairline colour for borders and rules.
	Frame   lipgloss.AdaptiveColor
	Borders BorderSet
}

// BorderSet groups the reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// DefaultTheme returns the slate document theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Theme{
		Ink:   ac("#0f172a", "#f8fafc"),
		Muted: ac("#334155", "#cbd5e1"),
		Faint: ac("#64748b", "#94a3b8"),
		Frame: ac("#cbd5e1", "#334155"),
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
	}
}

// Theme-aware style appliers.

// Ink colours text with the primary ink colour.
func Ink() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Ink)
	}
}

// Muted colours text with the secondary colour.
func Muted() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Muted)
	}
}

// Faint colours text with the tertiary label colour.
func Faint() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Faint)
	}
}

// Bold renders text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Accent colours text with an arbitrary hex colour, typically the template
// accent.
func Accent(hex string) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Foreground(lipgloss.Color(hex))
	}
}

// AccentBackground fills the background with an accent colour and switches
// the foreground to a light ink for contrast.
func AccentBackground(hex string) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("#f8fafc"))
	}
}

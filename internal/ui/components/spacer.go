package components

import "strings"

// Spacer renders empty space between components.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// VerticalSpacer creates vertical space of the given height.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// HorizontalSpacer creates horizontal space of the given width.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// View renders the spacer.
func (s *Spacer) View() string {
	w := s.width
	if w < 0 {
		w = 0
	}
	h := s.height
	if h < 0 {
		h = 0
	}
	if w == 0 && h == 0 {
		return ""
	}

	line := strings.Repeat(" ", w)
	if h <= 1 {
		return line
	}

	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

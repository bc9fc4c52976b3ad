package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	if len(views) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views)
	} else {
		content = s.joinVertical(views)
	}

	return s.ComputeStyle(ctx.Theme).Render(content)
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap > 0 {
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, strings.Repeat("\n", s.gap-1))
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	return lipgloss.JoinVertical(s.align, views...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap > 0 {
		pad := strings.Repeat(" ", s.gap)
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, pad)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children: blank lines for vertical
// stacks, spaces for horizontal ones.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment for vertical stacks.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

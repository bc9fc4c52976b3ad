// Package ui defines the minimal contract shared by all renderable
// document components.
package ui

// Renderable is anything that can render itself to styled terminal text.
type Renderable interface {
	View() string
}

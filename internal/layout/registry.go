package layout

import (
	"fmt"

	"github.com/facturakit/facturakit/internal/template"
	"github.com/facturakit/facturakit/internal/ui"
)

// Strategy assembles the document blocks into a page for one layout
// variant.
type Strategy func(d *document) ui.Renderable

var strategies = make(map[template.Variant]Strategy)

// register wires a variant to its strategy. Double registration is a
// programming error.
func register(variant template.Variant, fn Strategy) {
	if _, exists := strategies[variant]; exists {
		panic(fmt.Sprintf("layout: variant %q registered twice", variant))
	}
	strategies[variant] = fn
}

// Variants returns the registered variant tags.
func Variants() []template.Variant {
	out := make([]template.Variant, 0, len(strategies))
	for v := range strategies {
		out = append(out, v)
	}
	return out
}

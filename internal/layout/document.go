// Package layout arranges an invoice into a styled terminal document. Each
// template variant is a named strategy that assembles the same five blocks
// (header, issuer, parties, items, totals) into a distinct page.
package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/template"
	"github.com/facturakit/facturakit/internal/ui"
	"github.com/facturakit/facturakit/internal/ui/components"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

// Options control how a document is rendered.
type Options struct {
	// Compact renders a narrow page for thumbnails and galleries.
	Compact bool
	// CurrencySymbol overrides the default symbol on every money value.
	CurrencySymbol string
}

// document carries everything a variant strategy needs to assemble a page.
// Totals are recomputed from the items, never read from stored data.
type document struct {
	invoice *invoice.Invoice
	accent  string
	totals  invoice.Totals
	compact bool
	width   int
	symbol  string
}

func newDocument(inv *invoice.Invoice, accent string, opts Options) *document {
	width := components.DefaultDocumentWidth
	if opts.Compact {
		width = components.CompactDocumentWidth
	}
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = invoice.DefaultCurrencySymbol
	}
	return &document{
		invoice: inv,
		accent:  accent,
		totals:  invoice.ComputeTotals(inv.Items, inv.Discount, inv.TaxRatePercent),
		compact: opts.Compact,
		width:   width,
		symbol:  symbol,
	}
}

// money formats an amount with the document's currency symbol.
func (d *document) money(v float64) string {
	return invoice.FormatMoneyWith(v, d.symbol)
}

// Render lays out the invoice using the variant of its template. The accent
// colour on the invoice wins over the template default when set.
func Render(inv *invoice.Invoice, opts Options) (string, error) {
	tpl, err := template.Get(inv.TemplateID)
	if err != nil {
		return "", facturaerrors.NewRenderError(inv.TemplateID, err)
	}

	accent := inv.AccentColor
	if accent == "" {
		accent = tpl.Accent()
	}
	return RenderVariant(inv, tpl.LayoutVariant, accent, opts)
}

// RenderVariant lays out the invoice with an explicit variant and accent.
// The template gallery uses it to preview every arrangement against one
// sample invoice.
func RenderVariant(inv *invoice.Invoice, variant template.Variant, accent string, opts Options) (string, error) {
	fn, ok := strategies[variant]
	if !ok {
		return "", facturaerrors.NewRenderError(string(variant), nil)
	}

	doc := newDocument(inv, accent, opts)
	ctx := components.DefaultContext().WithWidth(doc.width)
	return renderPage(fn(doc), ctx), nil
}

// MustRender panics on failure. Variant tags originate from the template
// registry, so a failure here is a programming error.
func MustRender(inv *invoice.Invoice, opts Options) string {
	out, err := Render(inv, opts)
	if err != nil {
		panic(err)
	}
	return out
}

func renderPage(page ui.Renderable, ctx components.RenderContext) string {
	if contextual, ok := page.(components.ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return page.View()
}

// page wraps the assembled blocks in the standard rounded document frame.
func (d *document) page(children ...ui.Renderable) *components.Container {
	padH := 2
	if d.compact {
		padH = 1
	}
	return components.NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(1, padH).
		WithWidth(d.width).
		WithGap(1)
}

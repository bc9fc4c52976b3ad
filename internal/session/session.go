// Package session holds one mutable draft invoice and applies field-level
// patches to it. Every patch immediately recomputes totals and re-renders
// the preview, so callers always observe a document consistent with the
// draft.
package session

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/layout"
	"github.com/facturakit/facturakit/internal/palette"
	"github.com/facturakit/facturakit/internal/template"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

// Editor is the single active editing session for one draft invoice. It is
// not safe for concurrent use; exactly one editor drives one draft at a
// time.
type Editor struct {
	draft    invoice.Invoice
	template template.Template
	totals   invoice.Totals
	preview  string
	compact  bool
	currency string
}

// New starts an editing session over a copy of the given invoice. The
// invoice must reference a known template.
func New(initial invoice.Invoice) (*Editor, error) {
	tpl, err := template.Get(initial.TemplateID)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		draft:    initial.Clone(),
		template: tpl,
		currency: invoice.DefaultCurrencySymbol,
	}
	if e.draft.AccentColor == "" {
		e.draft.AccentColor = tpl.Accent()
	}
	e.refresh()
	return e, nil
}

// refresh recomputes totals and the preview document after a patch.
func (e *Editor) refresh() {
	e.totals = invoice.ComputeTotals(e.draft.Items, e.draft.Discount, e.draft.TaxRatePercent)
	e.preview = layout.MustRender(&e.draft, layout.Options{Compact: e.compact, CurrencySymbol: e.currency})
}

// SetCurrencySymbol switches the symbol shown on every money value.
func (e *Editor) SetCurrencySymbol(symbol string) {
	if symbol == "" {
		symbol = invoice.DefaultCurrencySymbol
	}
	e.currency = symbol
	e.refresh()
}

// CurrencySymbol reports the symbol money values are rendered with.
func (e *Editor) CurrencySymbol() string {
	return e.currency
}

// Draft returns a copy of the current draft for the caller to persist.
func (e *Editor) Draft() invoice.Invoice {
	return e.draft.Clone()
}

// Totals returns the totals for the current draft.
func (e *Editor) Totals() invoice.Totals {
	return e.totals
}

// Preview returns the rendered document for the current draft.
func (e *Editor) Preview() string {
	return e.preview
}

// Template returns the template the draft currently renders with.
func (e *Editor) Template() template.Template {
	return e.template
}

// SetCompact switches the preview between full and thumbnail width.
func (e *Editor) SetCompact(compact bool) {
	e.compact = compact
	e.refresh()
}

// Patch replaces top-level invoice fields through a mutator. Items,
// template and accent colour have dedicated operations and must not be
// touched here.
func (e *Editor) Patch(fn func(*invoice.Invoice)) {
	fn(&e.draft)
	e.refresh()
}

// SetIssuer replaces the issuer party.
func (e *Editor) SetIssuer(p invoice.Party) {
	e.draft.Issuer = p
	e.refresh()
}

// SetClient replaces the client party.
func (e *Editor) SetClient(p invoice.Party) {
	e.draft.Client = p
	e.refresh()
}

// AddItem appends an empty line item with a fresh id, quantity 1 and price
// 0, and returns it. Ids are never reused, even after removal.
func (e *Editor) AddItem() invoice.LineItem {
	item := invoice.NewLineItem("")
	e.draft.Items = append(e.draft.Items, item)
	e.refresh()
	return item
}

// UpdateItem patches the line item with the given id.
func (e *Editor) UpdateItem(id string, fn func(*invoice.LineItem)) error {
	idx := e.draft.ItemIndex(id)
	if idx < 0 {
		return facturaerrors.NewValidationError("items", "no line item with id "+id, nil)
	}
	fn(&e.draft.Items[idx])
	e.draft.Items[idx].ID = id
	e.refresh()
	return nil
}

// RemoveItem deletes the line item with the given id, keeping the display
// order of the rest.
func (e *Editor) RemoveItem(id string) error {
	idx := e.draft.ItemIndex(id)
	if idx < 0 {
		return facturaerrors.NewValidationError("items", "no line item with id "+id, nil)
	}
	e.draft.Items = append(e.draft.Items[:idx], e.draft.Items[idx+1:]...)
	e.refresh()
	return nil
}

// SetTemplate switches the draft to another template and resets the accent
// colour to that template's default.
func (e *Editor) SetTemplate(id string) error {
	tpl, err := template.Get(id)
	if err != nil {
		return err
	}
	e.template = tpl
	e.draft.TemplateID = tpl.ID
	e.draft.AccentColor = tpl.Accent()
	e.refresh()
	return nil
}

// SetAccentColor overrides the accent colour. The template selection is
// untouched. The value is typically one of AccentChoices but any parseable
// hex colour is accepted.
func (e *Editor) SetAccentColor(hex string) error {
	if _, err := colorful.Hex(hex); err != nil {
		return facturaerrors.NewValidationError("accentColor", "not a hex colour: "+hex, err)
	}
	e.draft.AccentColor = hex
	e.refresh()
	return nil
}

// AccentChoices expands the current template's palette into the accent
// colours offered by the builder. The template palette is static, so
// expansion cannot fail.
func (e *Editor) AccentChoices() []string {
	choices, err := palette.Expand(e.template.Palette[:])
	if err != nil {
		panic(err)
	}
	return choices
}

// AttachLogo replaces the draft's logo with the given URI or data
// reference. An empty value clears it.
func (e *Editor) AttachLogo(ref string) {
	e.draft.Logo = ref
	e.refresh()
}

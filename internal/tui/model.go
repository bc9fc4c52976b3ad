// Package tui is the interactive invoice builder: a form over the editing
// session on the left, the live document preview on the right.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturakit/facturakit/internal/invoice"
	"github.com/facturakit/facturakit/internal/logger"
	"github.com/facturakit/facturakit/internal/session"
	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

// field binds one editable line of the form to the session operation that
// applies it. ItemID is set for line-item fields so item-level keys know
// their target.
type field struct {
	Label  string
	ItemID string
	Value  func(inv invoice.Invoice) string
	Apply  func(e *session.Editor, raw string) error
}

// Model drives the builder.
type Model struct {
	editor *session.Editor
	log    *logger.Logger

	mode   Mode
	cursor int
	input  textinput.Model
	status string

	width  int
	height int
}

// New creates a builder over an editing session.
func New(editor *session.Editor, log *logger.Logger) Model {
	input := textinput.New()
	input.CharLimit = 120
	input.Width = 34

	return Model{
		editor: editor,
		log:    log,
		input:  input,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Editor exposes the underlying session, used by the caller to persist the
// final draft.
func (m Model) Editor() *session.Editor {
	return m.editor
}

// fields builds the form lines for the current draft. Line items contribute
// three fields each, so the list grows and shrinks with the draft.
func (m Model) fields() []field {
	fields := []field{
		{Label: "Número", Value: func(inv invoice.Invoice) string { return inv.Number },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.Number = v })},
		{Label: "Fecha", Value: func(inv invoice.Invoice) string { return inv.IssueDate },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.IssueDate = v })},
		{Label: "Vencimiento", Value: func(inv invoice.Invoice) string { return inv.DueDate },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.DueDate = v })},
		{Label: "Pedido (PO)", Value: func(inv invoice.Invoice) string { return inv.PurchaseOrder },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.PurchaseOrder = v })},
		{Label: "Método de pago", Value: func(inv invoice.Invoice) string { return inv.PaymentMethod },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.PaymentMethod = v })},
		{Label: "IBAN", Value: func(inv invoice.Invoice) string { return inv.BankReference },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.BankReference = v })},
		{Label: "Emisor", Value: func(inv invoice.Invoice) string { return inv.Issuer.Name },
			Apply: setIssuer(func(p *invoice.Party, v string) { p.Name = v })},
		{Label: "Emisor NIF", Value: func(inv invoice.Invoice) string { return inv.Issuer.TaxID },
			Apply: setIssuer(func(p *invoice.Party, v string) { p.TaxID = v })},
		{Label: "Emisor dirección", Value: func(inv invoice.Invoice) string { return inv.Issuer.Address },
			Apply: setIssuer(func(p *invoice.Party, v string) { p.Address = v })},
		{Label: "Emisor email", Value: func(inv invoice.Invoice) string { return inv.Issuer.Email },
			Apply: setIssuer(func(p *invoice.Party, v string) { p.Email = v })},
		{Label: "Cliente", Value: func(inv invoice.Invoice) string { return inv.Client.Name },
			Apply: setClient(func(p *invoice.Party, v string) { p.Name = v })},
		{Label: "Cliente NIF", Value: func(inv invoice.Invoice) string { return inv.Client.TaxID },
			Apply: setClient(func(p *invoice.Party, v string) { p.TaxID = v })},
		{Label: "Cliente dirección", Value: func(inv invoice.Invoice) string { return inv.Client.Address },
			Apply: setClient(func(p *invoice.Party, v string) { p.Address = v })},
		{Label: "Cliente email", Value: func(inv invoice.Invoice) string { return inv.Client.Email },
			Apply: setClient(func(p *invoice.Party, v string) { p.Email = v })},
		{Label: "IVA %", Value: func(inv invoice.Invoice) string { return formatNumber(inv.TaxRatePercent) },
			Apply: setNumber(func(inv *invoice.Invoice, v float64) { inv.TaxRatePercent = v })},
		{Label: "Descuento (modo)", Value: func(inv invoice.Invoice) string { return string(inv.Discount.Mode) },
			Apply: applyDiscountMode},
		{Label: "Descuento (valor)", Value: func(inv invoice.Invoice) string { return formatNumber(inv.Discount.Value) },
			Apply: setNumber(func(inv *invoice.Invoice, v float64) { inv.Discount.Value = v })},
		{Label: "Notas", Value: func(inv invoice.Invoice) string { return inv.Notes },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.Notes = v })},
		{Label: "Condiciones", Value: func(inv invoice.Invoice) string { return inv.Terms },
			Apply: setString(func(inv *invoice.Invoice, v string) { inv.Terms = v })},
	}

	for _, item := range m.editor.Draft().Items {
		id := item.ID
		fields = append(fields,
			field{Label: "· Concepto", ItemID: id,
				Value: func(inv invoice.Invoice) string { return itemField(inv, id, func(it invoice.LineItem) string { return it.Description }) },
				Apply: func(e *session.Editor, raw string) error {
					return e.UpdateItem(id, func(it *invoice.LineItem) { it.Description = raw })
				}},
			field{Label: "· Cantidad", ItemID: id,
				Value: func(inv invoice.Invoice) string {
					return itemField(inv, id, func(it invoice.LineItem) string { return formatNumber(it.Quantity) })
				},
				Apply: func(e *session.Editor, raw string) error {
					v, err := parseNumber(raw)
					if err != nil {
						return err
					}
					return e.UpdateItem(id, func(it *invoice.LineItem) { it.Quantity = v })
				}},
			field{Label: "· Precio", ItemID: id,
				Value: func(inv invoice.Invoice) string {
					return itemField(inv, id, func(it invoice.LineItem) string { return formatNumber(it.UnitPrice) })
				},
				Apply: func(e *session.Editor, raw string) error {
					v, err := parseNumber(raw)
					if err != nil {
						return err
					}
					return e.UpdateItem(id, func(it *invoice.LineItem) { it.UnitPrice = v })
				}},
		)
	}

	return fields
}

func itemField(inv invoice.Invoice, id string, get func(invoice.LineItem) string) string {
	for _, item := range inv.Items {
		if item.ID == id {
			return get(item)
		}
	}
	return ""
}

func setString(set func(*invoice.Invoice, string)) func(*session.Editor, string) error {
	return func(e *session.Editor, raw string) error {
		e.Patch(func(inv *invoice.Invoice) { set(inv, raw) })
		return nil
	}
}

func setIssuer(set func(*invoice.Party, string)) func(*session.Editor, string) error {
	return func(e *session.Editor, raw string) error {
		p := e.Draft().Issuer
		set(&p, raw)
		e.SetIssuer(p)
		return nil
	}
}

func setClient(set func(*invoice.Party, string)) func(*session.Editor, string) error {
	return func(e *session.Editor, raw string) error {
		p := e.Draft().Client
		set(&p, raw)
		e.SetClient(p)
		return nil
	}
}

func setNumber(set func(*invoice.Invoice, float64)) func(*session.Editor, string) error {
	return func(e *session.Editor, raw string) error {
		v, err := parseNumber(raw)
		if err != nil {
			return err
		}
		e.Patch(func(inv *invoice.Invoice) { set(inv, v) })
		return nil
	}
}

func applyDiscountMode(e *session.Editor, raw string) error {
	mode := invoice.DiscountMode(raw)
	if mode != invoice.DiscountPercent && mode != invoice.DiscountAmount {
		return facturaerrors.NewValidationError("discount.mode", "use percent or amount", nil)
	}
	e.Patch(func(inv *invoice.Invoice) { inv.Discount.Mode = mode })
	return nil
}

// parseNumber is lenient like the preview: empty input means zero.
func parseNumber(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, facturaerrors.NewValidationError("number", "not a number: "+raw, err)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

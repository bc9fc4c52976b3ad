package layout

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/ui"
	"github.com/facturakit/facturakit/internal/ui/components"
)

// heading shows the invoice number, the issue and due dates, and the
// purchase order when one exists. Compact pages put the dates on separate
// lines so the block never exceeds the thumbnail width.
func (d *document) heading() ui.Renderable {
	inv := d.invoice
	block := components.VStack(components.TitleText("#" + inv.Number))
	if d.compact {
		block.Add(
			components.BodyText("Fecha: "+inv.IssueDate),
			components.BodyText("Vencimiento: "+inv.DueDate),
		)
	} else {
		block.Add(components.BodyText(fmt.Sprintf("Fecha: %s · Vencimiento: %s", inv.IssueDate, inv.DueDate)))
	}
	if inv.PurchaseOrder != "" {
		block.Add(components.LabelText("PO: " + inv.PurchaseOrder))
	}
	return block
}

// issuerPanel shows who issues the invoice, right aligned in most variants.
// An attached logo renders as a marker line since the terminal cannot show
// the image itself.
func (d *document) issuerPanel() ui.Renderable {
	issuer := d.invoice.Issuer
	block := components.VStack().WithAlign(lipgloss.Right)
	if d.invoice.Logo != "" {
		block.Add(components.LabelText("[logotipo]"))
	}
	block.Add(
		components.EmphasisText(issuer.Name),
		components.LabelText(issuer.TaxID),
		components.LabelText(issuer.Address),
	)
	if contact := contactLine(issuer.Email, issuer.Phone); contact != "" {
		block.Add(components.LabelText(contact))
	}
	return block
}

func contactLine(email, phone string) string {
	switch {
	case email != "" && phone != "":
		return email + " · " + phone
	case email != "":
		return email
	default:
		return phone
	}
}

// billedTo pairs the client billing details with the payment terms in two
// columns.
func (d *document) billedTo() ui.Renderable {
	inv := d.invoice

	client := components.VStack(
		components.EmphasisText("Facturar a"),
		components.BodyText(inv.Client.Name),
		components.LabelText(inv.Client.TaxID),
		components.LabelText(inv.Client.Address),
		components.LabelText(inv.Client.Email),
	)
	payment := components.VStack(
		components.EmphasisText("Pago"),
		components.BodyText(inv.PaymentMethod),
		components.LabelText(inv.BankReference),
	)

	if d.compact {
		return components.VStack(client, payment).WithGap(1)
	}
	return components.NewSplit(client, payment)
}

// itemsTable lists the line items. Amounts are recomputed from quantity and
// price at render time.
func (d *document) itemsTable() ui.Renderable {
	table := components.NewTable(
		components.Column{Title: "Descripción", Flex: true},
		components.Column{Title: "Cant.", Align: lipgloss.Right},
		components.Column{Title: "Precio", Align: lipgloss.Right},
		components.Column{Title: "Importe", Align: lipgloss.Right},
	)
	for _, item := range d.invoice.Items {
		table.AddRow(
			item.Description,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			d.money(item.UnitPrice),
			d.money(item.Amount()),
		)
	}
	return table
}

// totalsPanel shows the derived totals, the final figure picked out in the
// accent colour.
func (d *document) totalsPanel() ui.Renderable {
	width := 30
	if d.compact {
		width = 26
	}

	t := d.totals
	rate := strconv.FormatFloat(d.invoice.TaxRatePercent, 'f', -1, 64)
	totalValue := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(d.accent)).
		Render(d.money(t.Total))

	panel := components.VStack(
		totalRow(width, "Subtotal", d.money(t.Subtotal)),
		totalRow(width, "Descuento", "-"+d.money(t.DiscountAmount)),
		totalRow(width, "Base", d.money(t.TaxableBase)),
		totalRow(width, "IVA ("+rate+"%)", d.money(t.TaxAmount)),
		components.NewDivider().WithWidth(width),
		boldRow(width, "Total", totalValue),
	)
	return components.AlignRight(panel)
}

// bigTotalFigure is the oversized total used by the bigTotal variant in
// place of the full totals panel.
func (d *document) bigTotalFigure() ui.Renderable {
	figure := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(d.accent)).
		Render("▐ " + d.money(d.totals.Total) + " ▌")
	return components.VStack(
		components.LabelText("Total"),
		components.NewText(figure),
	).WithAlign(lipgloss.Right)
}

// totalRow pads a label and value to opposite edges of a fixed width.
func totalRow(width int, label, value string) ui.Renderable {
	return components.BodyText(spreadRow(width, label, value))
}

// boldRow is totalRow for the emphasised final line. The value arrives
// pre-styled, so padding must measure printable width.
func boldRow(width int, label, value string) ui.Renderable {
	return components.NewText(spreadRow(width, label, value)).WithAppliers(components.Bold(), components.Ink())
}

func spreadRow(width int, label, value string) string {
	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return label + lipgloss.NewStyle().Width(gap).Render("") + value
}

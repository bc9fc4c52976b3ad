package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/facturakit/facturakit/internal/template"
	"github.com/facturakit/facturakit/internal/ui"
	"github.com/facturakit/facturakit/internal/ui/components"
)

func init() {
	register(template.VariantLeftTag, renderLeftTag)
	register(template.VariantTopBar, renderTopBar)
	register(template.VariantSidebar, renderSidebar)
	register(template.VariantSplitHeader, renderSplitHeader)
	register(template.VariantChip, renderChip)
	register(template.VariantBigTotal, renderBigTotal)
	register(template.VariantMonoFrame, renderMonoFrame)
	register(template.VariantAngled, renderAngled)
	register(template.VariantStamp, renderStamp)
	register(template.VariantGridLines, renderGridLines)
}

// leftTag puts a filled accent tag above the heading.
func renderLeftTag(d *document) ui.Renderable {
	left := components.VStack(
		components.AccentBadge("Factura", d.accent),
		d.heading(),
	).WithGap(1)
	return d.page(
		components.NewSplit(left, d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	)
}

// topBar opens the page with a full width accent bar.
func renderTopBar(d *document) ui.Renderable {
	bar := components.NewDivider().
		WithChar("▄").
		WithAppliers(components.Accent(d.accent))
	return d.page(
		bar,
		components.NewSplit(d.heading(), d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	)
}

// sidebar puts the heading and dates in a filled accent column and the rest
// of the invoice in the remaining width.
func renderSidebar(d *document) ui.Renderable {
	inv := d.invoice

	sidebarWidth := 18
	if d.compact {
		sidebarWidth = 12
	}

	rail := components.NewContainer(
		components.NewText("FACTURA"),
		components.NewText("#"+inv.Number).WithAppliers(components.Bold()),
		components.VerticalSpacer(1),
		components.NewText(inv.IssueDate),
		components.NewText("Vence: "+inv.DueDate),
	).
		WithPadding(1, 2).
		WithWidth(sidebarWidth).
		WithAppliers(components.AccentBackground(d.accent))

	main := components.NewContainer(
		components.AlignRight(d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	).
		WithPadding(1, 2).
		WithWidth(d.width-2-sidebarWidth).
		WithGap(1)

	return components.NewContainer(
		components.HStack(rail, main),
	).
		WithBorder(lipgloss.RoundedBorder()).
		WithWidth(d.width)
}

// splitHeader balances the heading against a pill and the issuer details.
func renderSplitHeader(d *document) ui.Renderable {
	right := components.VStack(
		components.AccentBadge("Factura · "+d.invoice.Number, d.accent),
		d.issuerPanel(),
	).WithGap(1).WithAlign(lipgloss.Right)
	return d.page(
		components.NewSplit(d.heading(), right),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	)
}

// chip leads with an inline label chip next to the invoice number.
func renderChip(d *document) ui.Renderable {
	chip := components.HStack(
		components.AccentBadge("FACTURA", d.accent),
		components.BodyText("#"+d.invoice.Number),
	).WithGap(1)
	return d.page(
		components.NewSplit(chip, d.issuerPanel()),
		d.heading(),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	)
}

// bigTotal replaces the totals panel with an oversized figure beside the
// heading.
func renderBigTotal(d *document) ui.Renderable {
	return d.page(
		components.NewSplit(d.heading(), d.bigTotalFigure()),
		components.AlignRight(d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
	)
}

// monoFrame wraps everything in a thick monochrome border, accent or not.
func renderMonoFrame(d *document) ui.Renderable {
	padH := 2
	if d.compact {
		padH = 1
	}
	head := components.VStack(
		components.NewText("FACTURA").WithAppliers(components.Bold(), components.Ink()),
		d.heading(),
	)
	return components.NewContainer(
		components.NewSplit(head, d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	).
		WithBorder(lipgloss.ThickBorder()).
		WithBorderColor("#0f172a").
		WithPadding(1, padH).
		WithWidth(d.width).
		WithGap(1)
}

// angled frames the heading in an accent-bordered panel, echoing the
// diagonal corner decoration.
func renderAngled(d *document) ui.Renderable {
	head := components.NewContainer(
		components.NewSplit(d.heading(), d.issuerPanel()),
	).
		WithBorder(lipgloss.RoundedBorder()).
		WithBorderColor(d.accent).
		WithPadding(0, 1)
	return d.page(
		head,
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	)
}

// stamp pairs the heading with a circular "to pay" mark.
func renderStamp(d *document) ui.Renderable {
	return d.page(
		components.NewSplit(d.heading(), components.OutlineBadge("PAGAR", d.accent)),
		components.AlignRight(d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	)
}

// gridLines nests the whole invoice inside an inner ruled panel.
func renderGridLines(d *document) ui.Renderable {
	head := components.VStack(
		components.NewText("FACTURA").WithAppliers(components.Accent(d.accent), components.Bold()),
		d.heading(),
	)
	inner := components.NewContainer(
		components.NewSplit(head, d.issuerPanel()),
		d.billedTo(),
		d.itemsTable(),
		d.totalsPanel(),
	).
		WithBorder(lipgloss.NormalBorder()).
		WithPadding(0, 1).
		WithGap(1)
	return d.page(inner)
}

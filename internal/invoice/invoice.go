// Package invoice holds the invoice domain model and the pure computations
// performed on it: line items, discounts, totals and money formatting.
package invoice

import (
	"time"

	"github.com/google/uuid"
)

// DiscountMode selects how a discount value is interpreted against the subtotal.
type DiscountMode string

const (
	// DiscountPercent interprets the value as a percentage of the subtotal.
	DiscountPercent DiscountMode = "percent"
	// DiscountAmount interprets the value as an absolute amount.
	DiscountAmount DiscountMode = "amount"
)

// Discount describes a subtotal-level reduction.
type Discount struct {
	Mode  DiscountMode `json:"mode"`
	Value float64      `json:"value"`
}

// LineItem is a single billable row. IDs are assigned at creation and never
// reused within a draft, even after deletion.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"omitempty,gte=0"`
}

// NewLineItem creates a line item with a fresh unique id, quantity 1 and
// price 0.
func NewLineItem(description string) LineItem {
	return LineItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    1,
		UnitPrice:   0,
	}
}

// Amount returns quantity × unit price with the same leniency as the totals
// calculator. Renderers call this instead of trusting stored amounts.
func (it LineItem) Amount() float64 {
	return coerce(it.Quantity) * coerce(it.UnitPrice)
}

// Party identifies one side of the invoice (issuer or client).
type Party struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
}

// Invoice is the full editable document. Item order is display order.
type Invoice struct {
	Number        string     `json:"number"`
	IssueDate     string     `json:"issueDate"`
	DueDate       string     `json:"dueDate"`
	PurchaseOrder string     `json:"purchaseOrder"`
	PaymentMethod string     `json:"paymentMethod"`
	BankReference string     `json:"bankReference"`
	Issuer        Party      `json:"issuer"`
	Client        Party      `json:"client"`
	Items         []LineItem `json:"items"`
	Notes         string     `json:"notes"`
	Terms         string     `json:"terms"`
	// Logo holds a data URI or file path; empty means no logo.
	Logo           string   `json:"logo,omitempty"`
	AccentColor    string   `json:"accentColor" validate:"omitempty,hexcolor"`
	Discount       Discount `json:"discount"`
	TaxRatePercent float64  `json:"taxRatePercent"`
	TemplateID     string   `json:"templateId" validate:"required"`
}

// ItemIndex returns the position of the item with the given id, or -1.
func (inv *Invoice) ItemIndex(id string) int {
	for i, it := range inv.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the invoice. Mutating the copy leaves the
// original untouched.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}

const dateLayout = "2006-01-02"

// Sample returns the documented default invoice used to seed new drafts and
// template previews. The accent colour matches the default template's first
// palette entry.
func Sample() Invoice {
	now := time.Now()
	return Invoice{
		Number:        "0001",
		IssueDate:     now.Format(dateLayout),
		DueDate:       now.AddDate(0, 0, 7).Format(dateLayout),
		PurchaseOrder: "PO-2025-001",
		PaymentMethod: "Transferencia",
		BankReference: "ES12 3456 7890 1234 5678 9012",
		Issuer: Party{
			Name:    "Tu Empresa S.L.",
			TaxID:   "B12345678",
			Address: "Calle Mayor 1, Madrid",
			Email:   "facturas@empresa.com",
			Phone:   "+34 600 000 000",
		},
		Client: Party{
			Name:    "Cliente Demo",
			TaxID:   "00000000A",
			Address: "C/ Falsa 123, Barcelona",
			Email:   "cliente@demo.com",
		},
		Items: []LineItem{
			{ID: uuid.NewString(), Description: "Servicio profesional", Quantity: 1, UnitPrice: 300},
			{ID: uuid.NewString(), Description: "Soporte", Quantity: 2, UnitPrice: 50},
		},
		Notes:          "Gracias por su confianza.",
		Terms:          "Pago a 7 días. Recargo por demora 1%.",
		AccentColor:    "#0f172a",
		Discount:       Discount{Mode: DiscountPercent, Value: 0},
		TaxRatePercent: 21,
		TemplateID:     "minimal",
	}
}

package render

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

// ======================================================
// Print/PDF boundary
// ======================================================
//
// The core assembles a complete Document and hands it to an external
// renderer; whatever comes back is an opaque artifact the core never
// inspects.

type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
}

type ClientInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type LineItem struct {
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type Document struct {
	Number    string          `json:"number"`
	Company   CompanyInfo     `json:"company"`
	Client    ClientInfo      `json:"client"`
	Vehicle   string          `json:"vehicle"`
	Items     []LineItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	Date      string          `json:"date"`
	Signature string          `json:"signature"`
}

type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// taxRates maps a budget's tax policy to the rate applied on top of the
// subtotal. Unknown policies render tax-free.
var taxRates = map[string]decimal.Decimal{
	"iva21":  decimal.NewFromFloat(0.21),
	"iva105": decimal.NewFromFloat(0.105),
}

// BuildDocument assembles the render payload for a budget. branch may be
// nil when the budget's branch was deleted; the company block is then
// blank, matching the blank display number segment.
func BuildDocument(b *models.Budget, branch *models.Branch, number string) Document {
	doc := Document{
		Number:    number,
		Vehicle:   b.Vehicle,
		Date:      b.Date,
		Signature: b.Signature,
		Client: ClientInfo{
			Name:  b.ClientName,
			Phone: b.ClientPhone,
			Email: b.ClientEmail,
		},
	}

	if branch != nil {
		doc.Company = CompanyInfo{
			Name:    branch.Name,
			Address: branch.Address,
			Phone:   branch.Phone,
			TaxID:   branch.TaxID,
		}
	}

	subtotal := decimal.Zero
	for _, it := range b.Items {
		doc.Items = append(doc.Items, LineItem{
			Quantity:    it.Quantity,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
		subtotal = subtotal.Add(it.LineTotal)
	}

	rate := taxRates[b.TaxPolicy]
	doc.Subtotal = subtotal
	doc.TaxRate = rate
	doc.TaxAmount = subtotal.Mul(rate).Round(2)
	doc.Total = doc.Subtotal.Add(doc.TaxAmount)

	return doc
}

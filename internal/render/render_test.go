package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/TallerHub/taller-quotes-api/internal/models"
)

func budgetFixture(taxPolicy string) *models.Budget {
	return &models.Budget{
		ClientName:  "Juan",
		ClientPhone: "123",
		Vehicle:     "Ford Fiesta",
		TaxPolicy:   taxPolicy,
		Items: []models.BudgetItem{
			{Quantity: decimal.NewFromInt(2), Description: "Aceite", UnitPrice: decimal.NewFromInt(4500), LineTotal: decimal.NewFromInt(9000)},
			{Quantity: decimal.NewFromInt(1), Description: "Filtro", UnitPrice: decimal.NewFromInt(1200), LineTotal: decimal.NewFromInt(1200)},
		},
	}
}

func TestBuildDocumentTaxBreakdown(t *testing.T) {
	branch := &models.Branch{Name: "Central", Address: "Av. Siempre Viva 123", TaxID: "30-11111111-1"}

	doc := BuildDocument(budgetFixture("iva21"), branch, "N° MB - 00000001")

	assert.Equal(t, "N° MB - 00000001", doc.Number)
	assert.Equal(t, "Central", doc.Company.Name)
	assert.True(t, doc.Subtotal.Equal(decimal.NewFromInt(10200)), "subtotal = %s", doc.Subtotal)
	assert.True(t, doc.TaxAmount.Equal(decimal.NewFromInt(2142)), "tax = %s", doc.TaxAmount)
	assert.True(t, doc.Total.Equal(decimal.NewFromInt(12342)), "total = %s", doc.Total)
}

func TestBuildDocumentUnknownPolicyIsTaxFree(t *testing.T) {
	doc := BuildDocument(budgetFixture("none"), &models.Branch{Name: "Central"}, "N° MB - 00000002")

	assert.True(t, doc.TaxAmount.IsZero())
	assert.True(t, doc.Total.Equal(doc.Subtotal))
}

func TestBuildDocumentNilBranch(t *testing.T) {
	doc := BuildDocument(budgetFixture("iva105"), nil, "N°  - 00000003")

	assert.Equal(t, CompanyInfo{}, doc.Company)
	assert.True(t, doc.TaxAmount.Equal(decimal.NewFromInt(1071)), "tax = %s", doc.TaxAmount)
}

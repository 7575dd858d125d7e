package dto

import "github.com/shopspring/decimal"

// Display-ready budget shape for the form UI. The Spanish keys are what
// the existing frontend binds against; do not rename them.
type BudgetSummaryDTO struct {
	ID             uint             `json:"id"`
	Numero         string           `json:"numero"`
	SucursalNombre string           `json:"sucursalNombre"`
	Cliente        ClienteDTO       `json:"cliente"`
	Vehiculo       string           `json:"vehiculo"`
	Items          []BudgetItemDTO  `json:"items"`
	Total          decimal.Decimal  `json:"total"`
	Status         string           `json:"status"`
	Date           string           `json:"date"`
	TaxPolicy      string           `json:"tax_policy"`
}

type ClienteDTO struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

type BudgetItemDTO struct {
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

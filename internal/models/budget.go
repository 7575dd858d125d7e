package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Presupuesto. The client/vehicle fields are a flattened snapshot taken at
// save time, not FKs: editing the client afterwards must not rewrite old
// budgets.
type Budget struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BranchID uint `gorm:"index" json:"branch_id"`

	// Sequence is the branch-scoped part of the display number, assigned
	// from the branch counter in the same transaction that inserts the row.
	Sequence string `gorm:"size:12" json:"sequence"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	Vehicle string `gorm:"size:255" json:"vehicle"`

	Items []BudgetItem `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"items"`

	// Total is taken from the caller, never recomputed from Items.
	Total decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`

	Status    string `gorm:"size:20;default:'draft'" json:"status"`
	Date      string `gorm:"size:10" json:"date"`
	Signature string `gorm:"type:text" json:"signature"`
	TaxPolicy string `gorm:"size:20;default:'none'" json:"tax_policy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BudgetItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BudgetID uint `gorm:"index;not null" json:"budget_id"`

	// Position preserves the order the caller submitted the lines in.
	Position int `gorm:"not null;default:0" json:"position"`

	Quantity    decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Description string          `gorm:"size:255" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(12,2)" json:"line_total"`
}

// BranchSequence is the per-branch display number counter. It is bumped
// with an atomic upsert so two concurrent budget creations can never read
// the same value.
type BranchSequence struct {
	BranchID     uint   `gorm:"primaryKey" json:"branch_id"`
	LastSequence uint64 `gorm:"not null;default:0" json:"last_sequence"`
}

package models

import "time"

// Sucursal del taller. Budgets keep the BranchID even after the branch
// is deleted, so there is no FK constraint here on purpose.
type Branch struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	TaxID   string `gorm:"size:20" json:"tax_id"`

	// Code is the short label used in display numbers ("MB" -> "N° MB - ...").
	// When empty the branch ordinal position is used instead.
	Code string `gorm:"size:10" json:"code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

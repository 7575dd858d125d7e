package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string `gorm:"size:50;uniqueIndex" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	CostPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost_price"`
	SalePrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	Stock     int             `gorm:"default:0" json:"stock"`

	SupplierID *uint     `gorm:"index" json:"supplier_id"`
	Supplier   *Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"supplier,omitempty"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

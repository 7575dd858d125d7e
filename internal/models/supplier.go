package models

import "time"

type Supplier struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	TaxID        string `gorm:"size:20" json:"tax_id"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:255" json:"address"`
	PaymentTerms string `gorm:"size:100" json:"payment_terms"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

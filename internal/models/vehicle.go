package models

import "time"

// Vehicle ids are uuid strings. Callers resend the id on edit to mean
// "same vehicle"; an absent id means a new one and the server generates it.
type Vehicle struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID uint   `gorm:"index;not null" json:"client_id"`

	Brand     string `gorm:"size:50" json:"brand"`
	Model     string `gorm:"size:50" json:"model"`
	Year      string `gorm:"size:10" json:"year"`
	Plate     string `gorm:"size:20" json:"plate"`
	VIN       string `gorm:"size:64" json:"vin"`
	Insurance string `gorm:"size:100" json:"insurance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

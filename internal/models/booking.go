package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Email        string `gorm:"size:100" json:"email"`
	Phone        string `gorm:"size:20;not null" json:"phone"`

	// ServiceID references the static catalog, never a table row.
	ServiceID string `gorm:"size:50;not null" json:"service_id"`

	Date string `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`        // HH:mm

	Notes string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

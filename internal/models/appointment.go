package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"clientName"`
	ClientEmail string `gorm:"size:100" json:"clientEmail"`
	ClientPhone string `gorm:"size:20;not null;index" json:"clientPhone"`

	Service  string `gorm:"size:100;not null" json:"service"`
	Date     string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time     string `gorm:"size:5;not null" json:"time"`        // HH:MM
	Duration int    `gorm:"not null" json:"duration"`           // minutos
	Notes    string `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;not null;default:'agendado'" json:"status"`

	// Código de indicação do próprio cliente e de quem o indicou
	ReferralCode string `gorm:"size:16;index" json:"referralCode"`
	ReferredBy   string `gorm:"size:16" json:"referredBy"`

	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

type ContactForm struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Service string `gorm:"size:100;not null" json:"service"`
	Message string `gorm:"size:1000" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
}

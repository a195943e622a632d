package models

import "time"

type Massagista struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	Descricao string `gorm:"size:1000;not null" json:"descricao"`
	FotoURL   string `gorm:"size:500;not null" json:"fotoUrl"`
	VideoURL  string `gorm:"size:500" json:"videoUrl"`

	SuiteMaster bool `gorm:"default:false" json:"suiteMaster"`
	Ativa       bool `gorm:"default:true" json:"ativa"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

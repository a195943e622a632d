package models

import "time"

// Referral é o registro de indicações de um cliente: um por telefone,
// identificado pelo código que ele compartilha.
type Referral struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferralCode string `gorm:"size:16;uniqueIndex;not null" json:"referralCode"`
	ClientName   string `gorm:"size:100;not null" json:"clientName"`
	ClientPhone  string `gorm:"size:20;uniqueIndex;not null" json:"clientPhone"`

	TotalReferred   int `gorm:"not null;default:0" json:"totalReferred"`
	DiscountsEarned int `gorm:"not null;default:0" json:"discountsEarned"`
	DiscountsUsed   int `gorm:"not null;default:0" json:"discountsUsed"`

	CreatedAt time.Time `json:"createdAt"`
}

// AvailableDiscounts é o saldo de descontos ainda não utilizados.
func (r *Referral) AvailableDiscounts() int {
	return r.DiscountsEarned - r.DiscountsUsed
}

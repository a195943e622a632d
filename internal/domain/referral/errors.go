package referral

import "errors"

var (
	// ErrInsufficientCredit indica resgate sem saldo de descontos.
	ErrInsufficientCredit = errors.New("no discounts available")

	// ErrNotFound indica que o registro de indicação não existe.
	ErrNotFound = errors.New("referral not found")
)

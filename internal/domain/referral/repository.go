package referral

import (
	"context"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		ref *models.Referral,
	) error

	// GetByCode e GetByPhone devolvem (nil, nil) quando não há registro:
	// ausência é um resultado normal, não um erro.
	GetByCode(
		ctx context.Context,
		code string,
	) (*models.Referral, error)

	GetByPhone(
		ctx context.Context,
		phone string,
	) (*models.Referral, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Referral, error)

	List(
		ctx context.Context,
	) ([]models.Referral, error)

	// Credit incrementa total_referred e discounts_earned em 1, como
	// ajuste relativo no banco. Código desconhecido é um no-op.
	Credit(
		ctx context.Context,
		code string,
	) error

	// RedeemDiscount incrementa discounts_used em 1 apenas quando ainda
	// há saldo, na mesma instrução SQL. Devolve ErrInsufficientCredit
	// quando o saldo está zerado e ErrNotFound quando o id não existe.
	RedeemDiscount(
		ctx context.Context,
		id uint,
	) (*models.Referral, error)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type ReferralGormRepository struct {
	db *gorm.DB
}

func NewReferralGormRepository(db *gorm.DB) *ReferralGormRepository {
	return &ReferralGormRepository{db: db}
}

func (r *ReferralGormRepository) Create(
	ctx context.Context,
	ref *models.Referral,
) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *ReferralGormRepository) GetByCode(
	ctx context.Context,
	code string,
) (*models.Referral, error) {
	return r.getOne(ctx, "referral_code = ?", code)
}

func (r *ReferralGormRepository) GetByPhone(
	ctx context.Context,
	phone string,
) (*models.Referral, error) {
	return r.getOne(ctx, "client_phone = ?", phone)
}

func (r *ReferralGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Referral, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *ReferralGormRepository) List(
	ctx context.Context,
) ([]models.Referral, error) {

	var refs []models.Referral
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// Credit incrementa os contadores direto no banco, como ajuste relativo:
// duas indicações simultâneas para o mesmo código não perdem atualização.
// Código inexistente não afeta linha alguma.
func (r *ReferralGormRepository) Credit(
	ctx context.Context,
	code string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Referral{}).
		Where("referral_code = ?", code).
		UpdateColumns(map[string]any{
			"total_referred":   gorm.Expr("total_referred + ?", 1),
			"discounts_earned": gorm.Expr("discounts_earned + ?", 1),
		}).Error
}

// RedeemDiscount consome um crédito. A guarda de saldo fica na própria
// cláusula WHERE, então dois resgates concorrentes nunca estouram o saldo.
func (r *ReferralGormRepository) RedeemDiscount(
	ctx context.Context,
	id uint,
) (*models.Referral, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Referral{}).
		Where("id = ? AND discounts_earned > discounts_used", id).
		UpdateColumn("discounts_used", gorm.Expr("discounts_used + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientCredit
	}

	return r.GetByID(ctx, id)
}

func (r *ReferralGormRepository) getOne(
	ctx context.Context,
	query string,
	arg any,
) (*models.Referral, error) {

	var ref models.Referral
	err := r.db.WithContext(ctx).Where(query, arg).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// Compile-time check
var _ domain.Repository = (*ReferralGormRepository)(nil)

package referral

import (
	"context"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type RedeemDiscount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRedeemDiscount(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RedeemDiscount {
	return &RedeemDiscount{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RedeemDiscount) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) (*models.Referral, error) {

	ref, err := uc.repo.RedeemDiscount(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "discount_redeemed",
		Entity:   "referral",
		EntityID: &ref.ID,
	})

	return ref, nil
}

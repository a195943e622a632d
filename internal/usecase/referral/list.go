package referral

import (
	"context"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type ListReferrals struct {
	repo domain.Repository
}

func NewListReferrals(repo domain.Repository) *ListReferrals {
	return &ListReferrals{repo: repo}
}

func (uc *ListReferrals) Execute(ctx context.Context) ([]models.Referral, error) {
	return uc.repo.List(ctx)
}

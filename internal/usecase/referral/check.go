package referral

import (
	"context"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

// CheckCode valida um código antes do agendamento: devolve o registro
// quando o código existe e nil quando não existe.
type CheckCode struct {
	repo domain.Repository
}

func NewCheckCode(repo domain.Repository) *CheckCode {
	return &CheckCode{repo: repo}
}

func (uc *CheckCode) Execute(
	ctx context.Context,
	code string,
) (*models.Referral, error) {
	return uc.repo.GetByCode(ctx, code)
}

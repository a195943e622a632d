package referral

import (
	"context"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
)

// CreditReferral registra uma indicação bem-sucedida: quem indicou ganha
// um desconto por agendamento indicado. Código desconhecido ou vencido é
// ignorado em silêncio, sem rejeitar o agendamento que o trouxe.
type CreditReferral struct {
	repo domain.Repository
}

func NewCreditReferral(repo domain.Repository) *CreditReferral {
	return &CreditReferral{repo: repo}
}

func (uc *CreditReferral) Execute(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	return uc.repo.Credit(ctx, code)
}

package referral

import (
	"context"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/referralcode"
)

// maxGenerationAttempts limita as tentativas antes do código de fallback.
const maxGenerationAttempts = 5

// ======================================================
// USE CASE
// ======================================================

// IssueCode emite o código de indicação de um cliente. O telefone é a
// chave de idempotência: chamadas repetidas devolvem sempre o mesmo
// registro, nunca criam um segundo.
type IssueCode struct {
	repo domain.Repository

	// generate é trocável nos testes para forçar colisões.
	generate func(referralcode.Options) string
}

func NewIssueCode(repo domain.Repository) *IssueCode {
	return &IssueCode{
		repo:     repo,
		generate: referralcode.Generate,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *IssueCode) Execute(
	ctx context.Context,
	clientName string,
	clientPhone string,
) (*models.Referral, error) {

	existing, err := uc.repo.GetByPhone(ctx, clientPhone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	code, err := uc.uniqueCode(ctx, clientName)
	if err != nil {
		return nil, err
	}

	ref := &models.Referral{
		ReferralCode: code,
		ClientName:   clientName,
		ClientPhone:  clientPhone,
	}

	if err := uc.repo.Create(ctx, ref); err != nil {
		// Corrida na criação: outro request pode ter emitido o código
		// deste telefone primeiro. A restrição única resolve, e aqui
		// basta reutilizar o registro vencedor.
		winner, lookupErr := uc.repo.GetByPhone(ctx, clientPhone)
		if lookupErr == nil && winner != nil {
			return winner, nil
		}
		return nil, err
	}

	return ref, nil
}

// uniqueCode tenta um código personalizado algumas vezes; colisões
// persistentes caem num código mais longo e totalmente aleatório.
func (uc *IssueCode) uniqueCode(
	ctx context.Context,
	clientName string,
) (string, error) {

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		code := uc.generate(referralcode.Options{
			ClientName: clientName,
			UsePrefix:  true,
		})

		taken, err := uc.repo.GetByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if taken == nil {
			return code, nil
		}
	}

	return uc.generate(referralcode.Options{
		Length: referralcode.FallbackLength,
	}), nil
}

package appointment

import (
	"context"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
	ucReferral "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/referral"
)

type ConfirmAppointment struct {
	repo      domain.Repository
	issueCode *ucReferral.IssueCode
	audit     *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	issueCode *ucReferral.IssueCode,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:      repo,
		issueCode: issueCode,
		audit:     audit,
	}
}

// Execute confirma o agendamento e devolve também o registro de
// indicação do cliente, para a recepção apresentar o código a ele.
// A emissão é idempotente por telefone: confirmar não cria um segundo
// código para quem já ganhou o seu ao agendar.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, *models.Referral, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if ap == nil {
		return nil, nil, httperr.ErrBusiness("appointment_not_found")
	}

	ref, err := uc.issueCode.Execute(ctx, ap.ClientName, ap.ClientPhone)
	if err != nil {
		return nil, nil, err
	}

	if err := appointment.Confirm(ap, ref.ReferralCode); err != nil {
		return nil, nil, err
	}

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, ref, nil
}

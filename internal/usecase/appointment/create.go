package appointment

import (
	"context"
	"time"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
	ucReferral "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	Service  string
	Date     string
	Time     string
	Duration int
	Notes    string

	// ReferredBy é o código de quem indicou este cliente, se houver.
	ReferredBy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	issueCode *ucReferral.IssueCode
	credit    *ucReferral.CreditReferral
	audit     *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	issueCode *ucReferral.IssueCode,
	credit *ucReferral.CreditReferral,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		issueCode: issueCode,
		credit:    credit,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	phone, ok := validators.NormalizePhone(in.ClientPhone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if in.Duration <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	ap := &models.Appointment{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: phone,
		Service:     in.Service,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    in.Duration,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
		ReferredBy:  in.ReferredBy,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// Quem indicou este cliente ganha um crédito de desconto. O crédito
	// é do indicador, não do cliente novo.
	if ap.ReferredBy != "" {
		if err := uc.credit.Execute(ctx, ap.ReferredBy); err != nil {
			return nil, err
		}
	}

	// Todo cliente que agenda vira um indicador em potencial: emitimos
	// (ou reutilizamos) o código dele e anexamos ao agendamento.
	ref, err := uc.issueCode.Execute(ctx, ap.ClientName, ap.ClientPhone)
	if err != nil {
		return nil, err
	}

	ap.ReferralCode = ref.ReferralCode
	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

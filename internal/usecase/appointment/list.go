package appointment

import (
	"context"

	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista os agendamentos de uma data (YYYY-MM-DD) ou todos,
// quando a data vier vazia.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	if date != "" {
		return uc.repo.ListByDate(ctx, date)
	}
	return uc.repo.ListAll(ctx)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return uc.repo.GetByID(ctx, id)
}

package appointment

import (
	"context"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
)

// DeleteAppointment remove o registro definitivamente. Créditos de
// indicação já concedidos por este agendamento não são revertidos.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	deleted, err := uc.repo.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}

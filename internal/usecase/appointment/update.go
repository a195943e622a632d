package appointment

import (
	"context"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

// Campos mutáveis via atualização parcial. Os contadores de indicação
// não passam por aqui: são ajustados apenas pelos fluxos do ledger.
var updatableFields = map[string]string{
	"clientName":  "client_name",
	"clientEmail": "client_email",
	"clientPhone": "client_phone",
	"service":     "service",
	"date":        "date",
	"time":        "time",
	"duration":    "duration",
	"notes":       "notes",
	"status":      "status",
	"referredBy":  "referred_by",
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	fields map[string]any,
) (*models.Appointment, error) {

	columns := make(map[string]any, len(fields))
	for name, value := range fields {
		if column, ok := updatableFields[name]; ok {
			columns[column] = value
		}
	}

	if len(columns) == 0 {
		return nil, httperr.ErrBusiness("no_updatable_fields")
	}

	ap, err := uc.repo.UpdateFields(ctx, appointmentID, columns)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

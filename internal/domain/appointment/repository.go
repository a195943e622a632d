package appointment

import (
	"context"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// UpdateFields aplica uma atualização parcial e devolve o registro
	// atualizado; (nil, nil) quando o id não existe.
	UpdateFields(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) (*models.Appointment, error)

	Save(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Delete devolve false quando nada foi removido.
	Delete(
		ctx context.Context,
		id uint,
	) (bool, error)

	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)
}

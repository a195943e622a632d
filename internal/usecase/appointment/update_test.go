package appointment

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/infra/repository"
)

func TestUpdateAppointmentFiltersUnknownFields(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	apRepo := repository.NewAppointmentGormRepository(env.db)
	dispatcher := audit.NewDispatcher(audit.New(env.db), zerolog.Nop())
	updateUC := NewUpdateAppointment(apRepo, dispatcher)

	updated, err := updateUC.Execute(ctx, 1, ap.ID, map[string]any{
		"notes":         "trazer exame",
		"referralCode":  "HACK-1", // contadores e código não são editáveis
		"naoExiste":     true,
		"discountsUsed": 99,
	})
	require.NoError(t, err)
	assert.Equal(t, "trazer exame", updated.Notes)
	assert.Equal(t, ap.ReferralCode, updated.ReferralCode)
}

func TestUpdateAppointmentNoUpdatableFields(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	apRepo := repository.NewAppointmentGormRepository(env.db)
	dispatcher := audit.NewDispatcher(audit.New(env.db), zerolog.Nop())
	updateUC := NewUpdateAppointment(apRepo, dispatcher)

	_, err = updateUC.Execute(ctx, 1, ap.ID, map[string]any{"naoExiste": true})
	assert.True(t, httperr.IsBusiness(err, "no_updatable_fields"))
}

func TestDeleteAppointment(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	apRepo := repository.NewAppointmentGormRepository(env.db)
	dispatcher := audit.NewDispatcher(audit.New(env.db), zerolog.Nop())
	deleteUC := NewDeleteAppointment(apRepo, dispatcher)

	require.NoError(t, deleteUC.Execute(ctx, 1, ap.ID))

	err = deleteUC.Execute(ctx, 1, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

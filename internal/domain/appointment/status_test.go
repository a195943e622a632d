package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

func TestTransitions(t *testing.T) {
	cases := []struct {
		name  string
		check func(Status) error
		from  Status
		ok    bool
	}{
		{"confirmar agendado", CanConfirm, StatusScheduled, true},
		{"confirmar confirmado", CanConfirm, StatusConfirmed, false},
		{"confirmar cancelado", CanConfirm, StatusCancelled, false},
		{"cancelar agendado", CanCancel, StatusScheduled, true},
		{"cancelar confirmado", CanCancel, StatusConfirmed, true},
		{"cancelar concluido", CanCancel, StatusCompleted, false},
		{"concluir confirmado", CanComplete, StatusConfirmed, true},
		{"concluir agendado", CanComplete, StatusScheduled, false},
		{"concluir cancelado", CanComplete, StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestConfirmAttachesReferralCode(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Confirm(ap, "MS-234"))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, "MS-234", ap.ReferralCode)
}

func TestCancelKeepsReferralCode(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed), ReferralCode: "MS-234"}

	require.NoError(t, Cancel(ap))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "MS-234", ap.ReferralCode)
}

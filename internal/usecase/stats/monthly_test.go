package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/ClinicaExecutivas/studio-scheduler/internal/db"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/appointment"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/infra/repository"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

func seedAppointments(t *testing.T, rows []models.Appointment) domain.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	repo := repository.NewAppointmentGormRepository(db)
	ctx := context.Background()
	for i := range rows {
		if rows[i].Status == "" {
			rows[i].Status = "agendado"
		}
		require.NoError(t, repo.Create(ctx, &rows[i]))
	}
	return repo
}

func visit(name, phone, date string) models.Appointment {
	return models.Appointment{
		ClientName:  name,
		ClientPhone: phone,
		Service:     "Massagem Relaxante",
		Date:        date,
		Time:        "10:00",
		Duration:    60,
	}
}

func TestMonthlyStatsGroupsByCalendarMonth(t *testing.T) {
	repo := seedAppointments(t, []models.Appointment{
		visit("Ana", "11999990001", "2026-07-01"),
		visit("Ana", "11999990001", "2026-07-15"),
		visit("Bia", "11999990002", "2026-07-20"),
		visit("Ana", "11999990001", "2026-08-03"),
	})

	uc := NewMonthlyStats(repo)
	uc.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Mais recente primeiro.
	assert.Equal(t, "2026-08", out[0].Month)
	assert.Equal(t, 1, out[0].Count)
	assert.Equal(t, []string{"Ana"}, out[0].Clients)

	assert.Equal(t, "2026-07", out[1].Month)
	assert.Equal(t, 3, out[1].Count)
	assert.Equal(t, []string{"Ana", "Bia"}, out[1].Clients)
	require.Len(t, out[1].ClientVisits, 2)
	assert.Equal(t, ClientVisit{Name: "Ana", Count: 2}, out[1].ClientVisits[0])
	assert.Equal(t, ClientVisit{Name: "Bia", Count: 1}, out[1].ClientVisits[1])
}

func TestMonthlyStatsPadsCurrentMonth(t *testing.T) {
	repo := seedAppointments(t, []models.Appointment{
		visit("Ana", "11999990001", "2026-06-10"),
	})

	uc := NewMonthlyStats(repo)
	uc.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "2026-08", out[0].Month)
	assert.Equal(t, 0, out[0].Count)
	assert.Empty(t, out[0].Clients)
	assert.Empty(t, out[0].ClientVisits)

	assert.Equal(t, "2026-06", out[1].Month)
}

func TestMonthlyStatsSkipsUnparsableDates(t *testing.T) {
	repo := seedAppointments(t, []models.Appointment{
		visit("Ana", "11999990001", "2026-08-03"),
		visit("Bia", "11999990002", "nao-e-data"),
	})

	uc := NewMonthlyStats(repo)
	uc.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Count)
}

func TestClientRankingOrdersByVisits(t *testing.T) {
	repo := seedAppointments(t, []models.Appointment{
		visit("Ana", "11999990001", "2026-07-01"),
		visit("Bia", "11999990002", "2026-07-02"),
		visit("Bia", "11999990002", "2026-07-09"),
		visit("Bia", "11999990002", "2026-08-01"),
		visit("Ana", "11999990001", "2026-08-02"),
		// Mesmo nome, outro telefone: cliente distinto.
		visit("Ana", "11777770003", "2026-08-05"),
	})

	uc := NewClientRanking(repo)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, ClientRank{Name: "Bia", Phone: "11999990002", Count: 3}, out[0])
	assert.Equal(t, ClientRank{Name: "Ana", Phone: "11999990001", Count: 2}, out[1])
	assert.Equal(t, ClientRank{Name: "Ana", Phone: "11777770003", Count: 1}, out[2])
}

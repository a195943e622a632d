package appointment

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/audit"
	dbpkg "github.com/ClinicaExecutivas/studio-scheduler/internal/db"
	domainRef "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/httperr"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/infra/repository"
	ucReferral "github.com/ClinicaExecutivas/studio-scheduler/internal/usecase/referral"
)

type testEnv struct {
	db      *gorm.DB
	refRepo domainRef.Repository
	create  *CreateAppointment
	confirm *ConfirmAppointment
	redeem  *ucReferral.RedeemDiscount
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	apRepo := repository.NewAppointmentGormRepository(db)
	refRepo := repository.NewReferralGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), zerolog.Nop())

	issueCode := ucReferral.NewIssueCode(refRepo)
	credit := ucReferral.NewCreditReferral(refRepo)

	return &testEnv{
		db:      db,
		refRepo: refRepo,
		create:  NewCreateAppointment(apRepo, issueCode, credit, dispatcher),
		confirm: NewConfirmAppointment(apRepo, issueCode, dispatcher),
		redeem:  ucReferral.NewRedeemDiscount(refRepo, dispatcher),
	}
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:  "Ana",
		ClientPhone: "(11) 99999-0001",
		ClientEmail: "ana@example.com",
		Service:     "Massagem Relaxante",
		Date:        "2026-09-10",
		Time:        "14:00",
		Duration:    60,
	}
}

func TestCreateAppointmentIssuesCodeWithZeroedLedger(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, "agendado", ap.Status)
	assert.Equal(t, "11999990001", ap.ClientPhone)
	assert.NotEmpty(t, ap.ReferralCode)

	ref, err := env.refRepo.GetByPhone(ctx, "11999990001")
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, ap.ReferralCode, ref.ReferralCode)
	assert.Equal(t, 0, ref.TotalReferred)
	assert.Equal(t, 0, ref.DiscountsEarned)
	assert.Equal(t, 0, ref.DiscountsUsed)
}

func TestCreateAppointmentCreditsReferrer(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ana, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	bia := validInput()
	bia.ClientName = "Bia"
	bia.ClientPhone = "(11) 99999-0002"
	bia.ClientEmail = "bia@example.com"
	bia.ReferredBy = ana.ReferralCode

	apBia, err := env.create.Execute(ctx, bia)
	require.NoError(t, err)
	assert.NotEqual(t, ana.ReferralCode, apBia.ReferralCode)

	// O crédito é da Ana, que indicou; a Bia começa zerada.
	anaRef, err := env.refRepo.GetByCode(ctx, ana.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, 1, anaRef.TotalReferred)
	assert.Equal(t, 1, anaRef.DiscountsEarned)
	assert.Equal(t, 0, anaRef.DiscountsUsed)

	biaRef, err := env.refRepo.GetByCode(ctx, apBia.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, 0, biaRef.DiscountsEarned)
}

func TestCreateAppointmentUnknownReferrerIsSilent(t *testing.T) {
	env := setupEnv(t)

	in := validInput()
	in.ReferredBy = "ZZ-999"

	ap, err := env.create.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "agendado", ap.Status)
}

func TestCreateAppointmentValidation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
		code   string
	}{
		{"telefone curto", func(in *CreateAppointmentInput) { in.ClientPhone = "123" }, "invalid_phone"},
		{"data invalida", func(in *CreateAppointmentInput) { in.Date = "10/09/2026" }, "invalid_date"},
		{"hora invalida", func(in *CreateAppointmentInput) { in.Time = "14h00" }, "invalid_time"},
		{"duracao zero", func(in *CreateAppointmentInput) { in.Duration = 0 }, "invalid_duration"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := env.create.Execute(ctx, in)
			var be httperr.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tc.code, be.Code)
		})
	}
}

func TestConfirmReusesExistingCode(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	confirmed, ref, err := env.confirm.Execute(ctx, 1, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, "confirmado", confirmed.Status)
	assert.Equal(t, ap.ReferralCode, ref.ReferralCode)

	refs, err := env.refRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestConfirmUnknownAppointment(t *testing.T) {
	env := setupEnv(t)

	_, _, err := env.confirm.Execute(context.Background(), 1, 999)
	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "appointment_not_found", be.Code)
}

func TestReferralFlowEndToEnd(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	ana, err := env.create.Execute(ctx, validInput())
	require.NoError(t, err)

	bia := validInput()
	bia.ClientName = "Bia"
	bia.ClientPhone = "(11) 99999-0002"
	bia.ReferredBy = ana.ReferralCode
	_, err = env.create.Execute(ctx, bia)
	require.NoError(t, err)

	anaRef, err := env.refRepo.GetByCode(ctx, ana.ReferralCode)
	require.NoError(t, err)
	require.Equal(t, 1, anaRef.AvailableDiscounts())

	redeemed, err := env.redeem.Execute(ctx, 1, anaRef.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, redeemed.DiscountsUsed)
	assert.Equal(t, 0, redeemed.AvailableDiscounts())

	_, err = env.redeem.Execute(ctx, 1, anaRef.ID)
	require.ErrorIs(t, err, domainRef.ErrInsufficientCredit)
}

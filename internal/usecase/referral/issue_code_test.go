package referral

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/ClinicaExecutivas/studio-scheduler/internal/db"
	domain "github.com/ClinicaExecutivas/studio-scheduler/internal/domain/referral"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/infra/repository"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/referralcode"
)

func setupRepo(t *testing.T) domain.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	return repository.NewReferralGormRepository(db)
}

func TestIssueCodeCreatesPersonalizedCode(t *testing.T) {
	repo := setupRepo(t)
	uc := NewIssueCode(repo)

	ref, err := uc.Execute(context.Background(), "Maria Silva", "11999990000")
	require.NoError(t, err)

	assert.Regexp(t, `^MS-[A-Z0-9]{3}$`, ref.ReferralCode)
	assert.Equal(t, "Maria Silva", ref.ClientName)
	assert.Equal(t, 0, ref.TotalReferred)
	assert.Equal(t, 0, ref.DiscountsEarned)
	assert.Equal(t, 0, ref.DiscountsUsed)
}

func TestIssueCodeIsIdempotentByPhone(t *testing.T) {
	repo := setupRepo(t)
	uc := NewIssueCode(repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, "Maria Silva", "11999990000")
	require.NoError(t, err)

	second, err := uc.Execute(ctx, "Maria S.", "11999990000")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ReferralCode, second.ReferralCode)

	refs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestIssueCodeRetriesOnCollision(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Referral{
		ReferralCode: "MS-AAA",
		ClientName:   "Maria Souza",
		ClientPhone:  "11888880000",
	}))

	uc := NewIssueCode(repo)
	calls := 0
	uc.generate = func(opts referralcode.Options) string {
		calls++
		if calls == 1 {
			return "MS-AAA" // colide com o código existente
		}
		return "MS-BBB"
	}

	ref, err := uc.Execute(ctx, "Maria Silva", "11999990000")
	require.NoError(t, err)
	assert.Equal(t, "MS-BBB", ref.ReferralCode)
	assert.Equal(t, 2, calls)
}

func TestIssueCodeFallsBackAfterPersistentCollisions(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Referral{
		ReferralCode: "MS-AAA",
		ClientName:   "Maria Souza",
		ClientPhone:  "11888880000",
	}))

	uc := NewIssueCode(repo)
	calls := 0
	uc.generate = func(opts referralcode.Options) string {
		calls++
		if opts.Length == referralcode.FallbackLength {
			return fmt.Sprintf("FALLBK%02d", calls)
		}
		return "MS-AAA"
	}

	ref, err := uc.Execute(ctx, "Maria Silva", "11999990000")
	require.NoError(t, err)
	assert.Equal(t, maxGenerationAttempts+1, calls)
	assert.Len(t, ref.ReferralCode, referralcode.FallbackLength)
}

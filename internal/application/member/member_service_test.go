package member

import (
	"context"
	"testing"

	"github.com/coop-erp/backend/internal/domain/member"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	return NewService(&persistence.Database{DB: db}, zap.NewNop())
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCreateMember_GeneratesNumber(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Siti Rahayu"})
	require.NoError(t, err)
	require.Contains(t, m.MemberNumber, "MEM-")
	require.Equal(t, member.MemberStatusCandidate, m.Status)

	got, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.MemberNumber, got.MemberNumber)
}

func TestCreateSavingsTransaction_PropagatesBalances(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Budi Santoso"})
	require.NoError(t, err)

	_, err = svc.CreateSavingsTransaction(ctx, m.ID, SavingsTransactionInput{
		TransactionType: string(member.TransactionTypeVoluntary),
		Amount:          d("250"),
	})
	require.NoError(t, err)

	_, err = svc.CreateSavingsTransaction(ctx, m.ID, SavingsTransactionInput{
		TransactionType: string(member.TransactionTypeWithdrawal),
		Amount:          d("100"),
	})
	require.NoError(t, err)

	got, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, got.VoluntarySavings.Equal(d("150")))

	page, err := svc.ListSavingsTransactions(ctx, m.ID, shared.Filter{})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
}

func TestCreateSavingsTransaction_InsufficientFundsRollsBack(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Dewi Lestari"})
	require.NoError(t, err)

	_, err = svc.CreateSavingsTransaction(ctx, m.ID, SavingsTransactionInput{
		TransactionType: string(member.TransactionTypeWithdrawal),
		Amount:          d("50"),
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "INSUFFICIENT_FUNDS", domainErr.Code)

	got, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, got.VoluntarySavings.IsZero())

	page, err := svc.ListSavingsTransactions(ctx, m.ID, shared.Filter{})
	require.NoError(t, err)
	require.Equal(t, int64(0), page.Total)
}

func TestCompleteSHUDistribution_CreditsMemberOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Agus Wijaya"})
	require.NoError(t, err)

	dist, err := svc.CreateSHUDistribution(ctx, SHUDistributionInput{
		MemberID:           m.ID,
		FiscalYear:         2025,
		Amount:             d("500"),
		DistributionMethod: string(member.DistributionMethodAccountCredit),
	})
	require.NoError(t, err)
	require.Equal(t, member.DistributionStatusPending, dist.Status)

	got, err := svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, got.SHUBalance.IsZero())

	_, err = svc.CompleteSHUDistribution(ctx, dist.ID)
	require.NoError(t, err)

	got, err = svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, got.SHUBalance.Equal(d("500")))
	require.True(t, got.VoluntarySavings.Equal(d("500")))

	_, err = svc.CompleteSHUDistribution(ctx, dist.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "INVALID_STATE", domainErr.Code)

	got, err = svc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, got.SHUBalance.Equal(d("500")))
}

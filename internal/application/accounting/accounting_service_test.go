package accounting

import (
	"context"
	"testing"
	"time"

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

func TestCreateAccount_RejectsDuplicateCode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, CreateAccountInput{
		AccountCode: "1100",
		AccountName: "Kas",
		AccountType: "asset",
	})
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, CreateAccountInput{
		AccountCode: "1100",
		AccountName: "Kas Kecil",
		AccountType: "asset",
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestPostJournalEntry_RequiresBalance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cash, err := svc.CreateAccount(ctx, CreateAccountInput{
		AccountCode: "1100", AccountName: "Kas", AccountType: "asset",
	})
	require.NoError(t, err)
	revenue, err := svc.CreateAccount(ctx, CreateAccountInput{
		AccountCode: "4100", AccountName: "Pendapatan Penjualan", AccountType: "revenue",
	})
	require.NoError(t, err)

	unbalanced, err := svc.CreateJournalEntry(ctx, CreateJournalEntryInput{
		Description: "Penjualan tunai",
		Lines: []LedgerLineInput{
			{AccountID: cash.ID, DebitAmount: d("500")},
			{AccountID: revenue.ID, CreditAmount: d("400")},
		},
	})
	require.NoError(t, err)
	require.Contains(t, unbalanced.EntryNumber, "JE-")

	_, err = svc.PostJournalEntry(ctx, unbalanced.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "INVALID_STATE", domainErr.Code)

	fixed := d("500")
	_, err = svc.UpdateJournalEntry(ctx, unbalanced.ID, UpdateJournalEntryInput{
		Lines: []LedgerLineInput{
			{AccountID: cash.ID, DebitAmount: fixed},
			{AccountID: revenue.ID, CreditAmount: fixed},
		},
	})
	require.NoError(t, err)

	posted, err := svc.PostJournalEntry(ctx, unbalanced.ID)
	require.NoError(t, err)
	require.True(t, posted.IsBalanced())

	_, err = svc.PostJournalEntry(ctx, unbalanced.ID)
	require.Error(t, err)
}

func TestPostedJournalEntry_IsImmutable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cash, err := svc.CreateAccount(ctx, CreateAccountInput{
		AccountCode: "1100", AccountName: "Kas", AccountType: "asset",
	})
	require.NoError(t, err)
	equity, err := svc.CreateAccount(ctx, CreateAccountInput{
		AccountCode: "3100", AccountName: "Modal", AccountType: "equity",
	})
	require.NoError(t, err)

	entry, err := svc.CreateJournalEntry(ctx, CreateJournalEntryInput{
		Description: "Setoran modal",
		Lines: []LedgerLineInput{
			{AccountID: cash.ID, DebitAmount: d("1000")},
			{AccountID: equity.ID, CreditAmount: d("1000")},
		},
	})
	require.NoError(t, err)
	_, err = svc.PostJournalEntry(ctx, entry.ID)
	require.NoError(t, err)

	desc := "edited"
	_, err = svc.UpdateJournalEntry(ctx, entry.ID, UpdateJournalEntryInput{Description: &desc})
	require.Error(t, err)

	err = svc.DeleteJournalEntry(ctx, entry.ID)
	require.Error(t, err)
}

func TestFiscalPeriod_CloseIsTerminal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateFiscalPeriod(ctx, FiscalPeriodInput{
		Name:      "2026-Q1",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	closed, err := svc.CloseFiscalPeriod(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "closed", string(closed.Status))

	_, err = svc.CloseFiscalPeriod(ctx, p.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "INVALID_STATE", domainErr.Code)
}

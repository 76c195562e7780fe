package accounting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNewChartOfAccounts(t *testing.T) {
	_, err := NewChartOfAccounts("", "Kas", AccountTypeAsset, "")
	assert.Error(t, err)

	_, err = NewChartOfAccounts("1-1000", "", AccountTypeAsset, "")
	assert.Error(t, err)

	_, err = NewChartOfAccounts("1-1000", "Kas", AccountType("fund"), "")
	assert.Error(t, err)

	a, err := NewChartOfAccounts("1-1000", "Kas", AccountTypeAsset, "Kas besar")
	require.NoError(t, err)
	assert.True(t, a.IsActive)
}

func TestLedgerEntry_Validation(t *testing.T) {
	je, err := NewJournalEntry("JE-202601-0001", time.Now(), "Penjualan tunai", "")
	require.NoError(t, err)

	_, err = NewLedgerEntry(uuid.Nil, uuid.New(), d("100"), decimal.Zero, "")
	assert.Error(t, err)

	_, err = NewLedgerEntry(je.ID, uuid.Nil, d("100"), decimal.Zero, "")
	assert.Error(t, err)

	_, err = NewLedgerEntry(je.ID, uuid.New(), d("100"), d("100"), "")
	assert.Error(t, err)

	_, err = NewLedgerEntry(je.ID, uuid.New(), decimal.Zero, decimal.Zero, "")
	assert.Error(t, err)

	_, err = NewLedgerEntry(je.ID, uuid.New(), d("-1"), decimal.Zero, "")
	assert.Error(t, err)
}

func TestJournalEntry_PostRequiresBalance(t *testing.T) {
	je, err := NewJournalEntry("JE-202601-0002", time.Now(), "Pembelian peralatan", "")
	require.NoError(t, err)

	err = je.Post()
	assert.Error(t, err)

	debit, err := NewLedgerEntry(je.ID, uuid.New(), d("500"), decimal.Zero, "Peralatan")
	require.NoError(t, err)
	je.Lines = append(je.Lines, *debit)

	err = je.Post()
	assert.Error(t, err)

	credit, err := NewLedgerEntry(je.ID, uuid.New(), decimal.Zero, d("500"), "Kas")
	require.NoError(t, err)
	je.Lines = append(je.Lines, *credit)

	require.True(t, je.IsBalanced())
	require.NoError(t, je.Post())
	assert.Equal(t, JournalStatusPosted, je.Status)

	err = je.Post()
	assert.Error(t, err)
}

func TestNewFiscalPeriod(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := NewFiscalPeriod("", start, end)
	assert.Error(t, err)

	_, err = NewFiscalPeriod("FY2026", end, start)
	assert.Error(t, err)

	p, err := NewFiscalPeriod("FY2026", start, end)
	require.NoError(t, err)
	assert.Equal(t, PeriodStatusOpen, p.Status)

	require.NoError(t, p.Close())
	assert.Error(t, p.Close())
}

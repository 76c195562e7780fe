package member

import (
	"testing"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newTestMember(t *testing.T) *Member {
	t.Helper()
	m, err := NewMember("MEM-202601-0001", "Siti Rahayu", time.Now(), MemberStatusActive, RegistrationMethodOffice)
	require.NoError(t, err)
	return m
}

func TestNewMember_Validation(t *testing.T) {
	_, err := NewMember("", "Siti", time.Now(), MemberStatusActive, RegistrationMethodWeb)
	assert.Error(t, err)

	_, err = NewMember("MEM-202601-0002", "  ", time.Now(), MemberStatusActive, RegistrationMethodWeb)
	assert.Error(t, err)

	_, err = NewMember("MEM-202601-0003", "Budi", time.Now(), MemberStatus("vip"), RegistrationMethodWeb)
	assert.Error(t, err)

	m, err := NewMember("MEM-202601-0004", "Budi", time.Time{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, MemberStatusCandidate, m.Status)
	assert.Equal(t, RegistrationMethodWeb, m.RegistrationMethod)
	assert.True(t, m.PrincipalSavings.IsZero())
	assert.False(t, m.JoinDate.IsZero())
}

func TestApplySavingsTransaction_Deposits(t *testing.T) {
	m := newTestMember(t)

	require.NoError(t, m.ApplySavingsTransaction(TransactionTypePrincipal, d("100000")))
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeVoluntary, d("250000")))
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeVoluntary, d("50000")))

	assert.True(t, m.PrincipalSavings.Equal(d("100000")))
	assert.True(t, m.VoluntarySavings.Equal(d("300000")))
	assert.True(t, m.MandatorySavings.IsZero())
}

func TestApplySavingsTransaction_MandatoryReducesUnpaid(t *testing.T) {
	m := newTestMember(t)
	m.UnpaidMandatory = d("100")

	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeMandatory, d("40")))

	assert.True(t, m.MandatorySavings.Equal(d("40")))
	assert.True(t, m.UnpaidMandatory.Equal(d("60")))

	// payment larger than the arrears clears them without going negative
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeMandatory, d("80")))
	assert.True(t, m.MandatorySavings.Equal(d("120")))
	assert.True(t, m.UnpaidMandatory.IsZero())
}

func TestApplySavingsTransaction_Withdrawal(t *testing.T) {
	m := newTestMember(t)
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeVoluntary, d("500")))

	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeWithdrawal, d("200")))
	assert.True(t, m.VoluntarySavings.Equal(d("300")))

	// exact balance can be withdrawn
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeWithdrawal, d("300")))
	assert.True(t, m.VoluntarySavings.IsZero())
}

func TestApplySavingsTransaction_WithdrawalInsufficientFunds(t *testing.T) {
	m := newTestMember(t)
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypeVoluntary, d("100")))
	require.NoError(t, m.ApplySavingsTransaction(TransactionTypePrincipal, d("1000")))

	err := m.ApplySavingsTransaction(TransactionTypeWithdrawal, d("100.01"))
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_FUNDS", domainErr.Code)

	// no balance was touched by the rejected withdrawal
	assert.True(t, m.VoluntarySavings.Equal(d("100")))
	assert.True(t, m.PrincipalSavings.Equal(d("1000")))
}

func TestApplySavingsTransaction_Validation(t *testing.T) {
	m := newTestMember(t)

	err := m.ApplySavingsTransaction(TransactionType("bonus"), d("10"))
	assert.Error(t, err)

	err = m.ApplySavingsTransaction(TransactionTypeVoluntary, decimal.Zero)
	assert.Error(t, err)

	err = m.ApplySavingsTransaction(TransactionTypeVoluntary, d("-5"))
	assert.Error(t, err)
}

func TestApplySHUDistribution(t *testing.T) {
	m := newTestMember(t)

	pending, err := NewSHUDistribution(m.ID, 2025, d("750000"), time.Now(), DistributionMethodAccountCredit, DistributionStatusPending)
	require.NoError(t, err)

	// pending distributions have no balance effect
	m.ApplySHUDistribution(pending)
	assert.True(t, m.SHUBalance.IsZero())
	assert.True(t, m.VoluntarySavings.IsZero())

	require.NoError(t, pending.Complete())
	m.ApplySHUDistribution(pending)
	assert.True(t, m.SHUBalance.Equal(d("750000")))
	assert.True(t, m.VoluntarySavings.Equal(d("750000")))

	cash, err := NewSHUDistribution(m.ID, 2025, d("100000"), time.Now(), DistributionMethodCash, DistributionStatusCompleted)
	require.NoError(t, err)
	m.ApplySHUDistribution(cash)
	assert.True(t, m.SHUBalance.Equal(d("850000")))
	assert.True(t, m.VoluntarySavings.Equal(d("750000")))
}

func TestSHUDistribution_CompleteTwice(t *testing.T) {
	m := newTestMember(t)
	dist, err := NewSHUDistribution(m.ID, 2025, d("10000"), time.Now(), DistributionMethodTransfer, DistributionStatusPending)
	require.NoError(t, err)

	require.NoError(t, dist.Complete())
	err = dist.Complete()
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestNewSHUDistribution_Validation(t *testing.T) {
	m := newTestMember(t)

	_, err := NewSHUDistribution(m.ID, 2025, decimal.Zero, time.Now(), DistributionMethodCash, DistributionStatusPending)
	assert.Error(t, err)

	_, err = NewSHUDistribution(m.ID, 0, d("100"), time.Now(), DistributionMethodCash, DistributionStatusPending)
	assert.Error(t, err)

	dist, err := NewSHUDistribution(m.ID, 2025, d("100"), time.Time{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, DistributionMethodAccountCredit, dist.DistributionMethod)
	assert.Equal(t, DistributionStatusPending, dist.Status)
}

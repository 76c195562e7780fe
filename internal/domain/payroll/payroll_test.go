package payroll

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

func TestNewPayrollItem(t *testing.T) {
	payrollID, employeeID := uuid.New(), uuid.New()

	item, err := NewPayrollItem(payrollID, employeeID, d("5000000"), d("250000"))
	require.NoError(t, err)
	assert.True(t, item.NetSalary.Equal(d("4750000")))

	_, err = NewPayrollItem(uuid.Nil, employeeID, d("100"), decimal.Zero)
	assert.Error(t, err)

	_, err = NewPayrollItem(payrollID, uuid.Nil, d("100"), decimal.Zero)
	assert.Error(t, err)

	_, err = NewPayrollItem(payrollID, employeeID, d("-1"), decimal.Zero)
	assert.Error(t, err)

	_, err = NewPayrollItem(payrollID, employeeID, d("100"), d("150"))
	assert.Error(t, err)
}

func TestPayroll_TotalDeltas(t *testing.T) {
	p, err := NewPayroll(uuid.New(), time.Now(), "")
	require.NoError(t, err)
	require.True(t, p.TotalAmount.IsZero())

	p.AddItemAmount(d("4750000"))
	p.AddItemAmount(d("3200000"))
	assert.True(t, p.TotalAmount.Equal(d("7950000")))

	// a raise bumps the total by the difference only
	p.AdjustItemAmount(d("3200000"), d("3500000"))
	assert.True(t, p.TotalAmount.Equal(d("8250000")))

	// a cut works the same way in reverse
	p.AdjustItemAmount(d("4750000"), d("4500000"))
	assert.True(t, p.TotalAmount.Equal(d("8000000")))

	p.RemoveItemAmount(d("3500000"))
	assert.True(t, p.TotalAmount.Equal(d("4500000")))

	p.RemoveItemAmount(d("4500000"))
	assert.True(t, p.TotalAmount.IsZero())
}

func TestNewPayroll_Validation(t *testing.T) {
	_, err := NewPayroll(uuid.Nil, time.Now(), "")
	assert.Error(t, err)

	p, err := NewPayroll(uuid.New(), time.Time{}, "  catatan  ")
	require.NoError(t, err)
	assert.Equal(t, PayrollStatusDraft, p.Status)
	assert.Equal(t, "catatan", p.Notes)
	assert.False(t, p.PayrollDate.IsZero())
}

func TestNewEmployee(t *testing.T) {
	_, err := NewEmployee("", "Andi", "Kasir", time.Now(), d("3000000"))
	assert.Error(t, err)

	_, err = NewEmployee("EMP-202601-0001", "", "Kasir", time.Now(), d("3000000"))
	assert.Error(t, err)

	_, err = NewEmployee("EMP-202601-0001", "Andi", "Kasir", time.Now(), d("-1"))
	assert.Error(t, err)

	e, err := NewEmployee("EMP-202601-0001", "Andi", "Kasir", time.Now(), d("3000000"))
	require.NoError(t, err)
	assert.Equal(t, EmployeeStatusActive, e.Status)
}

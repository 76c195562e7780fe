package project

import (
	"testing"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNewProject_Validation(t *testing.T) {
	_, err := NewProject("", "Renovasi toko", uuid.New(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewProject("PRJ-202601-0001", " ", uuid.New(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewProject("PRJ-202601-0001", "Renovasi toko", uuid.Nil, decimal.Zero)
	assert.Error(t, err)

	_, err = NewProject("PRJ-202601-0001", "Renovasi toko", uuid.New(), d("-1"))
	assert.Error(t, err)

	p, err := NewProject("PRJ-202601-0001", "Renovasi toko", uuid.New(), d("5000000"))
	require.NoError(t, err)
	assert.Equal(t, ProjectStatusPlanning, p.Status)
	assert.True(t, p.TotalInvoiced.IsZero())
}

func TestTask_RecalcActualHours(t *testing.T) {
	task, err := NewProjectTask(uuid.New(), "Pemasangan instalasi", d("40"), d("150000"))
	require.NoError(t, err)

	e1, err := NewProjectTimeEntry(task.ID, uuid.New(), time.Now(), d("6.5"), true)
	require.NoError(t, err)
	e2, err := NewProjectTimeEntry(task.ID, uuid.New(), time.Now(), d("3"), false)
	require.NoError(t, err)
	task.TimeEntries = append(task.TimeEntries, *e1, *e2)

	task.RecalcActualHours()
	assert.True(t, task.ActualHours.Equal(d("9.5")))

	// deleting an entry shrinks the total on the next recompute
	task.TimeEntries = task.TimeEntries[1:]
	task.RecalcActualHours()
	assert.True(t, task.ActualHours.Equal(d("3")))

	task.TimeEntries = nil
	task.RecalcActualHours()
	assert.True(t, task.ActualHours.IsZero())
}

func TestTimeEntry_Validation(t *testing.T) {
	_, err := NewProjectTimeEntry(uuid.Nil, uuid.New(), time.Now(), d("1"), true)
	assert.Error(t, err)

	_, err = NewProjectTimeEntry(uuid.New(), uuid.Nil, time.Now(), d("1"), true)
	assert.Error(t, err)

	_, err = NewProjectTimeEntry(uuid.New(), uuid.New(), time.Now(), decimal.Zero, true)
	assert.Error(t, err)
}

func TestProjectInvoice_TotalsAndProjectRollup(t *testing.T) {
	p, err := NewProject("PRJ-202601-0002", "Pengadaan gudang", uuid.New(), d("10000000"))
	require.NoError(t, err)

	inv, err := NewProjectInvoice("PINV-202601-0001", p.ID, time.Now(), nil, d("100"))
	require.NoError(t, err)

	item, err := NewProjectInvoiceItem(inv.ID, "Jasa konsultasi", d("10"), d("90"))
	require.NoError(t, err)
	inv.Items = append(inv.Items, *item)
	inv.RecalcTotals()
	assert.True(t, inv.Subtotal.Equal(d("900")))
	assert.True(t, inv.TotalAmount.Equal(d("1000")))

	p.Invoices = append(p.Invoices, *inv)
	p.RecalcTotalInvoiced()
	assert.True(t, p.TotalInvoiced.Equal(d("1000")))

	inv2, err := NewProjectInvoice("PINV-202601-0002", p.ID, time.Now(), nil, decimal.Zero)
	require.NoError(t, err)
	item2, err := NewProjectInvoiceItem(inv2.ID, "Material", d("1"), d("500"))
	require.NoError(t, err)
	inv2.Items = append(inv2.Items, *item2)
	inv2.RecalcTotals()

	p.Invoices = append(p.Invoices, *inv2)
	p.RecalcTotalInvoiced()
	assert.True(t, p.TotalInvoiced.Equal(d("1500")))

	// removing an invoice shrinks the project total
	p.Invoices = p.Invoices[:1]
	p.RecalcTotalInvoiced()
	assert.True(t, p.TotalInvoiced.Equal(d("1000")))
}

func TestProjectInvoice_PaymentStatus(t *testing.T) {
	inv, err := NewProjectInvoice("PINV-202601-0003", uuid.New(), time.Now(), nil, decimal.Zero)
	require.NoError(t, err)
	item, err := NewProjectInvoiceItem(inv.ID, "Sewa alat", d("1"), d("1000"))
	require.NoError(t, err)
	inv.Items = append(inv.Items, *item)
	inv.RecalcTotals()

	_, err = inv.AddPayment(d("400"), time.Now(), "transfer", "TRX-1")
	require.NoError(t, err)
	assert.Equal(t, shared.SettlementStatusPartial, inv.PaymentStatus)

	_, err = inv.AddPayment(d("600"), time.Now(), "transfer", "TRX-2")
	require.NoError(t, err)
	assert.Equal(t, shared.SettlementStatusPaid, inv.PaymentStatus)

	_, err = inv.AddPayment(decimal.Zero, time.Now(), "cash", "")
	assert.Error(t, err)
}

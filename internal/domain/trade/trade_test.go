package trade

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

func TestNewSalesOrder_Validation(t *testing.T) {
	_, err := NewSalesOrder("", uuid.New(), time.Now(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewSalesOrder("SO-202601-0001", uuid.Nil, time.Now(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewSalesOrder("SO-202601-0001", uuid.New(), time.Now(), d("-1"))
	assert.Error(t, err)

	o, err := NewSalesOrder("SO-202601-0001", uuid.New(), time.Time{}, d("100"))
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDraft, o.Status)
	assert.Equal(t, shared.SettlementStatusUnpaid, o.PaymentStatus)
	assert.True(t, o.TotalAmount.Equal(d("100")))
	assert.False(t, o.OrderDate.IsZero())
}

func TestSalesOrder_RecalcTotals(t *testing.T) {
	o, err := NewSalesOrder("SO-202601-0002", uuid.New(), time.Now(), d("100"))
	require.NoError(t, err)

	item1, err := NewSalesOrderItem(o.ID, "Beras premium 25kg", d("4"), d("200"))
	require.NoError(t, err)
	item2, err := NewSalesOrderItem(o.ID, "Minyak goreng 2L", d("10"), d("20"))
	require.NoError(t, err)
	o.Items = append(o.Items, *item1, *item2)

	o.RecalcTotals()
	assert.True(t, o.Subtotal.Equal(d("1000")))
	assert.True(t, o.TotalAmount.Equal(d("1100")))

	// recomputation replaces, not accumulates
	o.RecalcTotals()
	assert.True(t, o.TotalAmount.Equal(d("1100")))

	o.Items = o.Items[:1]
	o.RecalcTotals()
	assert.True(t, o.Subtotal.Equal(d("800")))
	assert.True(t, o.TotalAmount.Equal(d("900")))
}

func TestNewSalesOrderItem_Validation(t *testing.T) {
	orderID := uuid.New()

	_, err := NewSalesOrderItem(orderID, "", d("1"), d("10"))
	assert.Error(t, err)

	_, err = NewSalesOrderItem(orderID, "Gula pasir", decimal.Zero, d("10"))
	assert.Error(t, err)

	_, err = NewSalesOrderItem(orderID, "Gula pasir", d("1"), d("-10"))
	assert.Error(t, err)

	item, err := NewSalesOrderItem(orderID, "Gula pasir", d("2.5"), d("14000"))
	require.NoError(t, err)
	assert.True(t, item.Subtotal.Equal(d("35000")))
}

func TestInvoiceLifecycle_PartialThenPaid(t *testing.T) {
	o, err := NewSalesOrder("SO-202601-0003", uuid.New(), time.Now(), d("100"))
	require.NoError(t, err)
	item, err := NewSalesOrderItem(o.ID, "Jasa instalasi", d("1"), d("1000"))
	require.NoError(t, err)
	o.Items = append(o.Items, *item)
	o.RecalcTotals()
	require.True(t, o.TotalAmount.Equal(d("1100")))

	inv, err := NewSalesInvoice("INV-202601-0001", o.ID, time.Now(), nil, d("1100"))
	require.NoError(t, err)
	o.Invoices = append(o.Invoices, *inv)
	o.RecalcPaymentStatus()
	assert.Equal(t, shared.SettlementStatusUnpaid, o.PaymentStatus)

	_, err = inv.AddPayment(d("500"), time.Now(), "transfer", "TRX-1")
	require.NoError(t, err)
	assert.Equal(t, shared.SettlementStatusPartial, inv.PaymentStatus)

	o.Invoices[0] = *inv
	o.RecalcPaymentStatus()
	assert.Equal(t, shared.SettlementStatusPartial, o.PaymentStatus)

	_, err = inv.AddPayment(d("600"), time.Now(), "transfer", "TRX-2")
	require.NoError(t, err)
	assert.Equal(t, shared.SettlementStatusPaid, inv.PaymentStatus)
	assert.True(t, inv.TotalPaid().Equal(d("1100")))

	o.Invoices[0] = *inv
	o.RecalcPaymentStatus()
	assert.Equal(t, shared.SettlementStatusPaid, o.PaymentStatus)
}

func TestInvoice_Overpayment(t *testing.T) {
	inv, err := NewSalesInvoice("INV-202601-0002", uuid.New(), time.Now(), nil, d("100"))
	require.NoError(t, err)

	_, err = inv.AddPayment(d("150"), time.Now(), "cash", "")
	require.NoError(t, err)
	assert.Equal(t, shared.SettlementStatusPaid, inv.PaymentStatus)
}

func TestInvoice_RecalcIdempotent(t *testing.T) {
	inv, err := NewSalesInvoice("INV-202601-0003", uuid.New(), time.Now(), nil, d("100"))
	require.NoError(t, err)
	_, err = inv.AddPayment(d("40"), time.Now(), "cash", "")
	require.NoError(t, err)

	inv.RecalcPaymentStatus()
	inv.RecalcPaymentStatus()
	assert.Equal(t, shared.SettlementStatusPartial, inv.PaymentStatus)
	assert.True(t, inv.TotalPaid().Equal(d("40")))
}

func TestInvoice_Validation(t *testing.T) {
	_, err := NewSalesInvoice("", uuid.New(), time.Now(), nil, d("100"))
	assert.Error(t, err)

	_, err = NewSalesInvoice("INV-202601-0004", uuid.Nil, time.Now(), nil, d("100"))
	assert.Error(t, err)

	_, err = NewSalesInvoice("INV-202601-0004", uuid.New(), time.Now(), nil, decimal.Zero)
	assert.Error(t, err)

	inv, err := NewSalesInvoice("INV-202601-0004", uuid.New(), time.Now(), nil, d("100"))
	require.NoError(t, err)
	_, err = inv.AddPayment(decimal.Zero, time.Now(), "cash", "")
	assert.Error(t, err)
	_, err = inv.AddPayment(d("-10"), time.Now(), "cash", "")
	assert.Error(t, err)
	assert.Equal(t, shared.SettlementStatusUnpaid, inv.PaymentStatus)
}

func TestPurchaseOrder_MirrorsSalesSide(t *testing.T) {
	po, err := NewPurchaseOrder("PO-202601-0001", uuid.New(), time.Now(), decimal.Zero)
	require.NoError(t, err)

	item, err := NewPurchaseOrderItem(po.ID, "Tepung terigu 50kg", d("20"), d("250000"))
	require.NoError(t, err)
	po.Items = append(po.Items, *item)
	po.RecalcTotals()
	assert.True(t, po.TotalAmount.Equal(d("5000000")))

	inv, err := NewSupplierInvoice("SINV-202601-0001", po.ID, time.Now(), nil, d("5000000"))
	require.NoError(t, err)

	_, err = inv.AddPayment(d("5000000"), time.Now(), "transfer", "TRX-9")
	require.NoError(t, err)
	assert.Equal(t, shared.SettlementStatusPaid, inv.PaymentStatus)

	po.Invoices = append(po.Invoices, *inv)
	po.RecalcPaymentStatus()
	assert.Equal(t, shared.SettlementStatusPaid, po.PaymentStatus)
}

func TestOrder_MultipleInvoiceRollup(t *testing.T) {
	o, err := NewSalesOrder("SO-202601-0005", uuid.New(), time.Now(), decimal.Zero)
	require.NoError(t, err)

	paid, err := NewSalesInvoice("INV-202601-0005", o.ID, time.Now(), nil, d("100"))
	require.NoError(t, err)
	_, err = paid.AddPayment(d("100"), time.Now(), "cash", "")
	require.NoError(t, err)

	unpaid, err := NewSalesInvoice("INV-202601-0006", o.ID, time.Now(), nil, d("200"))
	require.NoError(t, err)

	o.Invoices = []SalesInvoice{*paid, *unpaid}
	o.RecalcPaymentStatus()
	assert.Equal(t, shared.SettlementStatusPartial, o.PaymentStatus)
}

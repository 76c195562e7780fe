package trade

import (
	"context"
	"testing"

	"github.com/coop-erp/backend/internal/domain/partner"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *persistence.Database {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	return &persistence.Database{DB: db}
}

func newCustomer(t *testing.T, db *persistence.Database) uuid.UUID {
	t.Helper()
	c, err := partner.NewCustomer("PT Maju Jaya")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormCustomerRepository(db.DB).Save(context.Background(), c))
	return c.ID
}

func newSupplier(t *testing.T, db *persistence.Database) uuid.UUID {
	t.Helper()
	sup, err := partner.NewSupplier("CV Sumber Rezeki")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormSupplierRepository(db.DB).Save(context.Background(), sup))
	return sup.ID
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestSalesService_OrderLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		PartnerID: newCustomer(t, db),
		TaxAmount: d("100"),
		Items: []OrderItemInput{
			{Description: "Beras 50kg", Quantity: d("10"), UnitPrice: d("80")},
			{Description: "Gula 25kg", Quantity: d("4"), UnitPrice: d("50")},
		},
	})
	require.NoError(t, err)
	require.Contains(t, order.OrderNumber, "SO-")
	require.True(t, order.Subtotal.Equal(d("1000")))
	require.True(t, order.TotalAmount.Equal(d("1100")))
	require.Equal(t, shared.SettlementStatusUnpaid, order.PaymentStatus)

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{
		OrderID: order.ID,
		Amount:  d("1100"),
	})
	require.NoError(t, err)
	require.Contains(t, inv.InvoiceNumber, "INV-")

	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("500")})
	require.NoError(t, err)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, got.PaymentStatus)

	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("600")})
	require.NoError(t, err)

	got, err = svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, got.PaymentStatus)

	gotInv, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, gotInv.PaymentStatus)
	require.Len(t, gotInv.Payments, 2)
}

func TestSalesService_InvalidPaymentLeavesNothingBehind(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		PartnerID: newCustomer(t, db),
		Items:     []OrderItemInput{{Description: "Pupuk", Quantity: d("1"), UnitPrice: d("100")}},
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{OrderID: order.ID, Amount: d("100")})
	require.NoError(t, err)

	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("-50")})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	gotInv, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, gotInv.Payments)
	require.Equal(t, shared.SettlementStatusUnpaid, gotInv.PaymentStatus)
}

func TestSalesService_DeleteInvoiceRollsBackOrderStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		PartnerID: newCustomer(t, db),
		Items:     []OrderItemInput{{Description: "Minyak goreng", Quantity: d("2"), UnitPrice: d("100")}},
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{OrderID: order.ID, Amount: d("200")})
	require.NoError(t, err)
	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("200")})
	require.NoError(t, err)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, got.PaymentStatus)

	require.NoError(t, svc.DeleteInvoice(ctx, inv.ID))

	got, err = svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusUnpaid, got.PaymentStatus)
	require.Empty(t, got.Invoices)
}

func TestSalesService_UpdateOrderReplacesItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		PartnerID: newCustomer(t, db),
		Items:     []OrderItemInput{{Description: "Kopi", Quantity: d("5"), UnitPrice: d("20")}},
	})
	require.NoError(t, err)
	require.True(t, order.TotalAmount.Equal(d("100")))

	updated, err := svc.UpdateOrder(ctx, order.ID, UpdateOrderInput{
		Items: []OrderItemInput{
			{Description: "Kopi", Quantity: d("5"), UnitPrice: d("20")},
			{Description: "Teh", Quantity: d("10"), UnitPrice: d("15")},
		},
	})
	require.NoError(t, err)
	require.True(t, updated.TotalAmount.Equal(d("250")))

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	require.True(t, got.TotalAmount.Equal(d("250")))
}

func dp(v string) *decimal.Decimal {
	dec := decimal.RequireFromString(v)
	return &dec
}

func TestSalesService_DeleteLastPaymentRollsInvoiceBackToUnpaid(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		PartnerID: newCustomer(t, db),
		Items:     []OrderItemInput{{Description: "Semen 40kg", Quantity: d("10"), UnitPrice: d("60")}},
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{OrderID: order.ID, Amount: d("600")})
	require.NoError(t, err)
	payment, err := svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("600")})
	require.NoError(t, err)

	gotInv, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, gotInv.PaymentStatus)

	require.NoError(t, svc.DeletePayment(ctx, payment.ID))

	gotInv, err = svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusUnpaid, gotInv.PaymentStatus)
	require.Empty(t, gotInv.Payments)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusUnpaid, got.PaymentStatus)

	_, err = svc.GetPayment(ctx, payment.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSalesService_UpdatePaymentRederivesStatuses(t *testing.T) {
	db := newTestDB(t)
	svc := NewSalesService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		PartnerID: newCustomer(t, db),
		Items:     []OrderItemInput{{Description: "Genteng", Quantity: d("100"), UnitPrice: d("10")}},
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{OrderID: order.ID, Amount: d("1000")})
	require.NoError(t, err)
	payment, err := svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("1000")})
	require.NoError(t, err)

	updated, err := svc.UpdatePayment(ctx, payment.ID, UpdatePaymentInput{Amount: dp("400")})
	require.NoError(t, err)
	require.True(t, updated.Amount.Equal(d("400")))

	gotInv, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, gotInv.PaymentStatus)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, got.PaymentStatus)

	_, err = svc.UpdatePayment(ctx, payment.ID, UpdatePaymentInput{Amount: dp("-10")})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	payments, err := svc.ListPayments(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.True(t, payments[0].Amount.Equal(d("400")))
}

func TestPurchaseService_MirrorsSalesFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewPurchaseService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreatePurchaseOrderInput{
		SupplierID: newSupplier(t, db),
		TaxAmount:  d("50"),
		Items:      []OrderItemInput{{Description: "Karung plastik", Quantity: d("100"), UnitPrice: d("5")}},
	})
	require.NoError(t, err)
	require.Contains(t, order.OrderNumber, "PO-")
	require.True(t, order.TotalAmount.Equal(d("550")))

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{OrderID: order.ID, Amount: d("550")})
	require.NoError(t, err)
	require.Contains(t, inv.InvoiceNumber, "SINV-")

	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("550")})
	require.NoError(t, err)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, got.PaymentStatus)
}

func TestPurchaseService_DeletePaymentRollsBackStatuses(t *testing.T) {
	db := newTestDB(t)
	svc := NewPurchaseService(db, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreatePurchaseOrderInput{
		SupplierID: newSupplier(t, db),
		Items:      []OrderItemInput{{Description: "Solar industri", Quantity: d("20"), UnitPrice: d("15")}},
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, CreateInvoiceInput{OrderID: order.ID, Amount: d("300")})
	require.NoError(t, err)
	first, err := svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("200")})
	require.NoError(t, err)
	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("100")})
	require.NoError(t, err)

	gotInv, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, gotInv.PaymentStatus)

	require.NoError(t, svc.DeletePayment(ctx, first.ID))

	gotInv, err = svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, gotInv.PaymentStatus)
	require.Len(t, gotInv.Payments, 1)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, got.PaymentStatus)
}

package project

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

func newTestService(t *testing.T) (*Service, *persistence.Database) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	pdb := &persistence.Database{DB: db}
	return NewService(pdb, zap.NewNop()), pdb
}

func newCustomer(t *testing.T, db *persistence.Database) uuid.UUID {
	t.Helper()
	c, err := partner.NewCustomer("Koperasi Tani Makmur")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormCustomerRepository(db.DB).Save(context.Background(), c))
	return c.ID
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestTimeEntries_PropagateToTaskHours(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectInput{
		Name:       "Gudang Baru",
		CustomerID: newCustomer(t, db),
	})
	require.NoError(t, err)
	require.Contains(t, p.ProjectNumber, "PRJ-")

	task, err := svc.CreateTask(ctx, p.ID, CreateTaskInput{
		Name:           "Pondasi",
		EstimatedHours: d("40"),
		HourlyRate:     d("25"),
	})
	require.NoError(t, err)

	e1, err := svc.CreateTimeEntry(ctx, task.ID, TimeEntryInput{MemberID: uuid.New(), Hours: d("8")})
	require.NoError(t, err)
	_, err = svc.CreateTimeEntry(ctx, task.ID, TimeEntryInput{MemberID: uuid.New(), Hours: d("6.5")})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, got.ActualHours.Equal(d("14.5")))

	_, err = svc.UpdateTimeEntry(ctx, e1.ID, UpdateTimeEntryInput{Hours: ptr(d("4"))})
	require.NoError(t, err)

	got, err = svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, got.ActualHours.Equal(d("10.5")))

	require.NoError(t, svc.DeleteTimeEntry(ctx, e1.ID))

	got, err = svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, got.ActualHours.Equal(d("6.5")))
}

func TestInvoices_PropagateToProjectTotal(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectInput{
		Name:         "Renovasi Kantor",
		CustomerID:   newCustomer(t, db),
		BudgetAmount: d("10000"),
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, p.ID, CreateInvoiceInput{
		TaxAmount: d("100"),
		Items: []InvoiceItemInput{
			{Description: "Tahap 1", Quantity: d("1"), UnitPrice: d("2000")},
		},
	})
	require.NoError(t, err)
	require.Contains(t, inv.InvoiceNumber, "PINV-")
	require.True(t, inv.TotalAmount.Equal(d("2100")))

	got, err := svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.TotalInvoiced.Equal(d("2100")))

	_, err = svc.CreateInvoice(ctx, p.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{
			{Description: "Tahap 2", Quantity: d("1"), UnitPrice: d("3000")},
		},
	})
	require.NoError(t, err)

	got, err = svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.TotalInvoiced.Equal(d("5100")))

	require.NoError(t, svc.DeleteInvoice(ctx, inv.ID))

	got, err = svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.TotalInvoiced.Equal(d("3000")))
}

func TestInvoicePayments_DeriveStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectInput{
		Name:       "Instalasi Listrik",
		CustomerID: newCustomer(t, db),
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, p.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{{Description: "Material", Quantity: d("1"), UnitPrice: d("1000")}},
	})
	require.NoError(t, err)

	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("400")})
	require.NoError(t, err)

	got, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, got.PaymentStatus)

	_, err = svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("600")})
	require.NoError(t, err)

	got, err = svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, got.PaymentStatus)
}

func TestInvoicePayments_UpdateAndDeleteRederiveStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectInput{
		Name:       "Pembangunan Kios",
		CustomerID: newCustomer(t, db),
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, p.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{{Description: "Rangka baja", Quantity: d("1"), UnitPrice: d("800")}},
	})
	require.NoError(t, err)

	payment, err := svc.CreatePayment(ctx, inv.ID, PaymentInput{Amount: d("800")})
	require.NoError(t, err)

	got, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPaid, got.PaymentStatus)

	updated, err := svc.UpdatePayment(ctx, payment.ID, UpdatePaymentInput{Amount: ptr(d("300"))})
	require.NoError(t, err)
	require.True(t, updated.Amount.Equal(d("300")))

	got, err = svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusPartial, got.PaymentStatus)

	require.NoError(t, svc.DeletePayment(ctx, payment.ID))

	got, err = svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, shared.SettlementStatusUnpaid, got.PaymentStatus)
	require.Empty(t, got.Payments)

	payments, err := svc.ListPayments(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestUpdateInvoice_ReplacingItemsReprices(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectInput{
		Name:       "Pengadaan Mesin",
		CustomerID: newCustomer(t, db),
	})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(ctx, p.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{{Description: "Mesin jahit", Quantity: d("2"), UnitPrice: d("500")}},
	})
	require.NoError(t, err)
	require.True(t, inv.TotalAmount.Equal(d("1000")))

	updated, err := svc.UpdateInvoice(ctx, inv.ID, UpdateInvoiceInput{
		Items: []InvoiceItemInput{{Description: "Mesin jahit", Quantity: d("3"), UnitPrice: d("500")}},
	})
	require.NoError(t, err)
	require.True(t, updated.TotalAmount.Equal(d("1500")))

	got, err := svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.TotalInvoiced.Equal(d("1500")))
}

func ptr[T any](v T) *T {
	return &v
}

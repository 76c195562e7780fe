package payroll

import (
	"context"
	"testing"

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

func TestPayrollItems_AdjustRunTotalIncrementally(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e1, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "Rina", BaseSalary: d("3000")})
	require.NoError(t, err)
	require.Contains(t, e1.EmployeeNumber, "EMP-")
	e2, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "Joko", BaseSalary: d("2500")})
	require.NoError(t, err)

	run, err := svc.CreatePayroll(ctx, CreatePayrollInput{PeriodID: uuid.New()})
	require.NoError(t, err)
	require.True(t, run.TotalAmount.IsZero())

	item1, err := svc.CreatePayrollItem(ctx, run.ID, PayrollItemInput{
		EmployeeID:  e1.ID,
		GrossSalary: d("3000"),
		Deductions:  d("200"),
	})
	require.NoError(t, err)
	require.True(t, item1.NetSalary.Equal(d("2800")))

	_, err = svc.CreatePayrollItem(ctx, run.ID, PayrollItemInput{
		EmployeeID:  e2.ID,
		GrossSalary: d("2500"),
	})
	require.NoError(t, err)

	got, err := svc.GetPayroll(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, got.TotalAmount.Equal(d("5300")))

	newGross := d("3200")
	_, err = svc.UpdatePayrollItem(ctx, item1.ID, UpdatePayrollItemInput{GrossSalary: &newGross})
	require.NoError(t, err)

	got, err = svc.GetPayroll(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, got.TotalAmount.Equal(d("5500")))

	require.NoError(t, svc.DeletePayrollItem(ctx, item1.ID))

	got, err = svc.GetPayroll(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, got.TotalAmount.Equal(d("2500")))
}

func TestCreatePayrollItem_RejectsExcessDeductions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "Sari", BaseSalary: d("2000")})
	require.NoError(t, err)
	run, err := svc.CreatePayroll(ctx, CreatePayrollInput{PeriodID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.CreatePayrollItem(ctx, run.ID, PayrollItemInput{
		EmployeeID:  e.ID,
		GrossSalary: d("2000"),
		Deductions:  d("2500"),
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	got, err := svc.GetPayroll(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, got.TotalAmount.IsZero())
	require.Empty(t, got.Items)
}

func TestUpdatePayrollItem_DeductionsCannotExceedGross(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "Wati", BaseSalary: d("2000")})
	require.NoError(t, err)
	run, err := svc.CreatePayroll(ctx, CreatePayrollInput{PeriodID: uuid.New()})
	require.NoError(t, err)

	item, err := svc.CreatePayrollItem(ctx, run.ID, PayrollItemInput{
		EmployeeID:  e.ID,
		GrossSalary: d("2000"),
		Deductions:  d("100"),
	})
	require.NoError(t, err)

	badDeductions := d("3000")
	_, err = svc.UpdatePayrollItem(ctx, item.ID, UpdatePayrollItemInput{Deductions: &badDeductions})
	require.Error(t, err)

	got, err := svc.GetPayroll(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, got.TotalAmount.Equal(d("1900")))
}

package asset

import (
	"context"
	"testing"

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

func TestCreateDepreciation_MovesCurrentValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAsset(ctx, CreateAssetInput{
		Name:            "Truk Pengangkut",
		Category:        "vehicle",
		AcquisitionCost: d("50000"),
	})
	require.NoError(t, err)
	require.Contains(t, a.AssetNumber, "AST-")
	require.True(t, a.CurrentValue.Equal(d("50000")))

	dep, err := svc.CreateDepreciation(ctx, a.ID, DepreciationInput{
		Amount:         d("5000"),
		BookValueAfter: d("45000"),
	})
	require.NoError(t, err)
	require.True(t, dep.BookValueAfter.Equal(d("45000")))

	got, err := svc.GetAsset(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentValue.Equal(d("45000")))
}

func TestCreateDepreciation_DefaultsBookValueFromAmount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAsset(ctx, CreateAssetInput{
		Name:            "Mesin Penggiling",
		AcquisitionCost: d("10000"),
	})
	require.NoError(t, err)

	_, err = svc.CreateDepreciation(ctx, a.ID, DepreciationInput{Amount: d("1000")})
	require.NoError(t, err)

	got, err := svc.GetAsset(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentValue.Equal(d("9000")))
}

func TestUpdateDepreciation_RestatesCurrentValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAsset(ctx, CreateAssetInput{
		Name:            "Komputer Kantor",
		AcquisitionCost: d("8000"),
	})
	require.NoError(t, err)

	dep, err := svc.CreateDepreciation(ctx, a.ID, DepreciationInput{
		Amount:         d("800"),
		BookValueAfter: d("7200"),
	})
	require.NoError(t, err)

	restated := d("7000")
	_, err = svc.UpdateDepreciation(ctx, dep.ID, UpdateDepreciationInput{BookValueAfter: &restated})
	require.NoError(t, err)

	got, err := svc.GetAsset(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentValue.Equal(d("7000")))
}

func TestMaintenance_DoesNotTouchBookValue(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAsset(ctx, CreateAssetInput{
		Name:            "Generator",
		AcquisitionCost: d("15000"),
	})
	require.NoError(t, err)

	_, err = svc.CreateMaintenance(ctx, a.ID, MaintenanceInput{
		MaintenanceType: "repair",
		Description:     "Ganti filter oli",
		Cost:            d("250"),
	})
	require.NoError(t, err)

	got, err := svc.GetAsset(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentValue.Equal(d("15000")))

	records, err := svc.ListMaintenance(ctx, a.ID, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestUpdateMaintenance_AppliesPartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAsset(ctx, CreateAssetInput{
		Name:            "Forklift",
		AcquisitionCost: d("30000"),
	})
	require.NoError(t, err)

	m, err := svc.CreateMaintenance(ctx, a.ID, MaintenanceInput{
		MaintenanceType: "routine",
		Description:     "Servis berkala",
		Cost:            d("100"),
	})
	require.NoError(t, err)

	got, err := svc.GetMaintenance(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Servis berkala", got.Description)

	newCost := d("350")
	newType := "repair"
	updated, err := svc.UpdateMaintenance(ctx, m.ID, UpdateMaintenanceInput{
		MaintenanceType: &newType,
		Cost:            &newCost,
	})
	require.NoError(t, err)
	require.True(t, updated.Cost.Equal(d("350")))
	require.Equal(t, "Servis berkala", updated.Description)

	badCost := d("-1")
	_, err = svc.UpdateMaintenance(ctx, m.ID, UpdateMaintenanceInput{Cost: &badCost})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

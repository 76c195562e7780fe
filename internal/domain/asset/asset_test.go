package asset

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

func TestNewAsset(t *testing.T) {
	_, err := NewAsset("", "Mesin jahit", "equipment", time.Now(), d("5000"), d("10"))
	assert.Error(t, err)

	_, err = NewAsset("AST-202601-0001", "", "equipment", time.Now(), d("5000"), d("10"))
	assert.Error(t, err)

	_, err = NewAsset("AST-202601-0001", "Mesin jahit", "equipment", time.Now(), d("-1"), d("10"))
	assert.Error(t, err)

	a, err := NewAsset("AST-202601-0001", "Mesin jahit", "equipment", time.Now(), d("5000"), d("10"))
	require.NoError(t, err)
	assert.Equal(t, AssetStatusActive, a.Status)
	assert.True(t, a.CurrentValue.Equal(d("5000")))
}

func TestApplyDepreciation(t *testing.T) {
	a, err := NewAsset("AST-202601-0002", "Kendaraan operasional", "vehicle", time.Now(), d("5000"), d("10"))
	require.NoError(t, err)

	entry, err := NewAssetDepreciation(a.ID, time.Now(), d("500"), d("4500"))
	require.NoError(t, err)
	a.ApplyDepreciation(entry)
	assert.True(t, a.CurrentValue.Equal(d("4500")))

	// an updated book value replaces the current value outright
	entry.BookValueAfter = d("4400")
	a.ApplyDepreciation(entry)
	assert.True(t, a.CurrentValue.Equal(d("4400")))
}

func TestNewAssetDepreciation_Validation(t *testing.T) {
	_, err := NewAssetDepreciation(uuid.Nil, time.Now(), d("500"), d("4500"))
	assert.Error(t, err)

	_, err = NewAssetDepreciation(uuid.New(), time.Now(), d("-1"), d("4500"))
	assert.Error(t, err)

	_, err = NewAssetDepreciation(uuid.New(), time.Now(), d("500"), d("-1"))
	assert.Error(t, err)
}

func TestNewAssetMaintenance(t *testing.T) {
	_, err := NewAssetMaintenance(uuid.Nil, time.Now(), MaintenanceTypeRepair, "Ganti oli", d("100"))
	assert.Error(t, err)

	_, err = NewAssetMaintenance(uuid.New(), time.Now(), MaintenanceTypeRepair, "Ganti oli", d("-100"))
	assert.Error(t, err)

	m, err := NewAssetMaintenance(uuid.New(), time.Time{}, "", "Servis rutin", d("250"))
	require.NoError(t, err)
	assert.Equal(t, MaintenanceTypeRoutine, m.MaintenanceType)
	assert.False(t, m.MaintenanceDate.IsZero())
}

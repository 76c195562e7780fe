package asset

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle status of a fixed asset
type AssetStatus string

const (
	AssetStatusActive           AssetStatus = "active"
	AssetStatusUnderMaintenance AssetStatus = "under_maintenance"
	AssetStatusDisposed         AssetStatus = "disposed"
	AssetStatusSold             AssetStatus = "sold"
)

// IsValid checks if the status is a valid AssetStatus
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusActive, AssetStatusUnderMaintenance, AssetStatusDisposed, AssetStatusSold:
		return true
	}
	return false
}

// Asset is a fixed asset on the books. CurrentValue follows the book value of
// the latest depreciation entry.
type Asset struct {
	shared.BaseEntity
	AssetNumber      string          `json:"asset_number" gorm:"size:100;uniqueIndex;not null"`
	Name             string          `json:"name" gorm:"size:255;not null"`
	Category         string          `json:"category" gorm:"size:100"`
	AcquisitionDate  time.Time       `json:"acquisition_date" gorm:"not null"`
	AcquisitionCost  decimal.Decimal `json:"acquisition_cost" gorm:"type:decimal(12,2);not null"`
	CurrentValue     decimal.Decimal `json:"current_value" gorm:"type:decimal(12,2);not null"`
	DepreciationRate decimal.Decimal `json:"depreciation_rate" gorm:"type:decimal(5,2);default:0"`
	Location         string          `json:"location" gorm:"size:255"`
	Status           AssetStatus     `json:"status" gorm:"size:50;default:'active'"`
	AssignedTo       *uuid.UUID      `json:"assigned_to" gorm:"type:uuid"`
	Notes            string          `json:"notes" gorm:"type:text"`

	Depreciations []AssetDepreciation `json:"depreciations,omitempty" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
	Maintenance   []AssetMaintenance  `json:"maintenance,omitempty" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// NewAsset creates an active asset. CurrentValue starts at acquisition cost.
func NewAsset(assetNumber, name, category string, acquisitionDate time.Time, acquisitionCost, depreciationRate decimal.Decimal) (*Asset, error) {
	if strings.TrimSpace(assetNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Asset number cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Asset name cannot be empty")
	}
	if acquisitionCost.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Acquisition cost cannot be negative")
	}
	if depreciationRate.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Depreciation rate cannot be negative")
	}
	if acquisitionDate.IsZero() {
		acquisitionDate = time.Now()
	}
	return &Asset{
		BaseEntity:       shared.NewBaseEntity(),
		AssetNumber:      assetNumber,
		Name:             name,
		Category:         category,
		AcquisitionDate:  acquisitionDate,
		AcquisitionCost:  acquisitionCost,
		CurrentValue:     acquisitionCost,
		DepreciationRate: depreciationRate,
		Status:           AssetStatusActive,
	}, nil
}

// ApplyDepreciation moves the asset's current value to the entry's book value
func (a *Asset) ApplyDepreciation(entry *AssetDepreciation) {
	a.CurrentValue = entry.BookValueAfter
	a.Touch()
}

// AssetDepreciation records one depreciation period for an asset
type AssetDepreciation struct {
	shared.BaseEntity
	AssetID        uuid.UUID       `json:"asset_id" gorm:"type:uuid;index;not null"`
	PeriodDate     time.Time       `json:"period_date" gorm:"not null"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	BookValueAfter decimal.Decimal `json:"book_value_after" gorm:"type:decimal(12,2);not null"`
	Notes          string          `json:"notes" gorm:"type:text"`
}

// NewAssetDepreciation records a depreciation period
func NewAssetDepreciation(assetID uuid.UUID, periodDate time.Time, amount, bookValueAfter decimal.Decimal) (*AssetDepreciation, error) {
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Asset is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Depreciation amount cannot be negative")
	}
	if bookValueAfter.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Book value cannot be negative")
	}
	if periodDate.IsZero() {
		periodDate = time.Now()
	}
	return &AssetDepreciation{
		BaseEntity:     shared.NewBaseEntity(),
		AssetID:        assetID,
		PeriodDate:     periodDate,
		Amount:         amount,
		BookValueAfter: bookValueAfter,
	}, nil
}

// MaintenanceType classifies a maintenance record
type MaintenanceType string

const (
	MaintenanceTypeRoutine MaintenanceType = "routine"
	MaintenanceTypeRepair  MaintenanceType = "repair"
	MaintenanceTypeUpgrade MaintenanceType = "upgrade"
)

// AssetMaintenance records maintenance work done on an asset. It has no
// effect on the asset's book value.
type AssetMaintenance struct {
	shared.BaseEntity
	AssetID         uuid.UUID       `json:"asset_id" gorm:"type:uuid;index;not null"`
	MaintenanceDate time.Time       `json:"maintenance_date" gorm:"not null"`
	MaintenanceType MaintenanceType `json:"maintenance_type" gorm:"size:50;default:'routine'"`
	Description     string          `json:"description" gorm:"type:text"`
	Cost            decimal.Decimal `json:"cost" gorm:"type:decimal(12,2);default:0"`
	PerformedBy     string          `json:"performed_by" gorm:"size:255"`
	NextDueDate     *time.Time      `json:"next_due_date"`
}

// NewAssetMaintenance records maintenance work
func NewAssetMaintenance(assetID uuid.UUID, date time.Time, mType MaintenanceType, description string, cost decimal.Decimal) (*AssetMaintenance, error) {
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Asset is required")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Maintenance cost cannot be negative")
	}
	if mType == "" {
		mType = MaintenanceTypeRoutine
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &AssetMaintenance{
		BaseEntity:      shared.NewBaseEntity(),
		AssetID:         assetID,
		MaintenanceDate: date,
		MaintenanceType: mType,
		Description:     description,
		Cost:            cost,
	}, nil
}

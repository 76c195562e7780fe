package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/asset"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAssetRepository implements asset.Repository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// FindByID finds an asset by its ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	var a asset.Asset
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// AssetNumberExists reports whether an asset number is already taken
func (r *GormAssetRepository) AssetNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&asset.Asset{}).
		Where("asset_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all assets matching the filter
func (r *GormAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]asset.Asset, error) {
	var assets []asset.Asset
	query := applyFilter(r.db.WithContext(ctx).Model(&asset.Asset{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Count counts assets matching the filter
func (r *GormAssetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&asset.Asset{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates an asset without touching its children
func (r *GormAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	return r.db.WithContext(ctx).Omit("Depreciations", "Maintenance").Save(a).Error
}

// Delete removes an asset and its children
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&asset.Asset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormDepreciationRepository implements asset.DepreciationRepository using GORM
type GormDepreciationRepository struct {
	db *gorm.DB
}

// NewGormDepreciationRepository creates a new GormDepreciationRepository
func NewGormDepreciationRepository(db *gorm.DB) *GormDepreciationRepository {
	return &GormDepreciationRepository{db: db}
}

// FindByID finds a depreciation entry by its ID
func (r *GormDepreciationRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.AssetDepreciation, error) {
	var d asset.AssetDepreciation
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByAsset finds an asset's depreciation entries
func (r *GormDepreciationRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]asset.AssetDepreciation, error) {
	var entries []asset.AssetDepreciation
	query := applyFilter(
		r.db.WithContext(ctx).Model(&asset.AssetDepreciation{}).Where("asset_id = ?", assetID),
		filter,
	)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a depreciation entry
func (r *GormDepreciationRepository) Save(ctx context.Context, d *asset.AssetDepreciation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// Delete removes a depreciation entry
func (r *GormDepreciationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&asset.AssetDepreciation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormMaintenanceRepository implements asset.MaintenanceRepository using GORM
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRepository creates a new GormMaintenanceRepository
func NewGormMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// FindByID finds a maintenance record by its ID
func (r *GormMaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.AssetMaintenance, error) {
	var m asset.AssetMaintenance
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByAsset finds an asset's maintenance records
func (r *GormMaintenanceRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]asset.AssetMaintenance, error) {
	var records []asset.AssetMaintenance
	query := applyFilter(
		r.db.WithContext(ctx).Model(&asset.AssetMaintenance{}).Where("asset_id = ?", assetID),
		filter,
	)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save creates or updates a maintenance record
func (r *GormMaintenanceRepository) Save(ctx context.Context, m *asset.AssetMaintenance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete removes a maintenance record
func (r *GormMaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&asset.AssetMaintenance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

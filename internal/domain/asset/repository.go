package asset

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for asset persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	AssetNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Asset, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DepreciationRepository defines the interface for depreciation persistence
type DepreciationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssetDepreciation, error)
	FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]AssetDepreciation, error)
	Save(ctx context.Context, d *AssetDepreciation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceRepository defines the interface for maintenance persistence
type MaintenanceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssetMaintenance, error)
	FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]AssetMaintenance, error)
	Save(ctx context.Context, m *AssetMaintenance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package asset

import (
	"context"
	"time"

	"github.com/coop-erp/backend/internal/domain/asset"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles fixed assets, depreciation and maintenance. Depreciation
// writes move the asset's current value in the same transaction.
type Service struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewService creates a new asset Service
func NewService(db *persistence.Database, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateAssetInput carries the fields for registering an asset
type CreateAssetInput struct {
	Name             string          `json:"name" binding:"required"`
	Category         string          `json:"category"`
	AcquisitionDate  *time.Time      `json:"acquisition_date"`
	AcquisitionCost  decimal.Decimal `json:"acquisition_cost" binding:"required"`
	DepreciationRate decimal.Decimal `json:"depreciation_rate"`
	Location         string          `json:"location"`
	AssignedTo       *uuid.UUID      `json:"assigned_to"`
	Notes            string          `json:"notes"`
}

// UpdateAssetInput carries a partial update; nil fields are left unchanged.
// CurrentValue is never updated directly, only through depreciation entries.
type UpdateAssetInput struct {
	Name             *string          `json:"name"`
	Category         *string          `json:"category"`
	DepreciationRate *decimal.Decimal `json:"depreciation_rate"`
	Location         *string          `json:"location"`
	Status           *string          `json:"status"`
	AssignedTo       *uuid.UUID       `json:"assigned_to"`
	Notes            *string          `json:"notes"`
}

// DepreciationInput carries the fields for recording a depreciation period
type DepreciationInput struct {
	PeriodDate     *time.Time      `json:"period_date"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	BookValueAfter decimal.Decimal `json:"book_value_after"`
	Notes          string          `json:"notes"`
}

// UpdateDepreciationInput carries a partial depreciation update
type UpdateDepreciationInput struct {
	PeriodDate     *time.Time       `json:"period_date"`
	Amount         *decimal.Decimal `json:"amount"`
	BookValueAfter *decimal.Decimal `json:"book_value_after"`
	Notes          *string          `json:"notes"`
}

// UpdateMaintenanceInput carries a partial maintenance update
type UpdateMaintenanceInput struct {
	MaintenanceDate *time.Time       `json:"maintenance_date"`
	MaintenanceType *string          `json:"maintenance_type"`
	Description     *string          `json:"description"`
	Cost            *decimal.Decimal `json:"cost"`
	PerformedBy     *string          `json:"performed_by"`
	NextDueDate     *time.Time       `json:"next_due_date"`
}

// MaintenanceInput carries the fields for logging maintenance work
type MaintenanceInput struct {
	MaintenanceDate *time.Time      `json:"maintenance_date"`
	MaintenanceType string          `json:"maintenance_type"`
	Description     string          `json:"description"`
	Cost            decimal.Decimal `json:"cost"`
	PerformedBy     string          `json:"performed_by"`
	NextDueDate     *time.Time      `json:"next_due_date"`
}

// CreateAsset registers an asset with a generated asset number
func (s *Service) CreateAsset(ctx context.Context, input CreateAssetInput) (*asset.Asset, error) {
	repo := persistence.NewGormAssetRepository(s.db.DB)
	number, err := shared.GenerateDocumentNumber(shared.PrefixAsset, func(n string) (bool, error) {
		return repo.AssetNumberExists(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	acquisitionDate := time.Now()
	if input.AcquisitionDate != nil {
		acquisitionDate = *input.AcquisitionDate
	}
	a, err := asset.NewAsset(number, input.Name, input.Category, acquisitionDate,
		input.AcquisitionCost, input.DepreciationRate)
	if err != nil {
		return nil, err
	}
	a.Location = input.Location
	a.AssignedTo = input.AssignedTo
	a.Notes = input.Notes

	if err := repo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("asset registered",
		zap.String("asset_id", a.ID.String()),
		zap.String("asset_number", a.AssetNumber))
	return a, nil
}

// GetAsset fetches an asset by ID
func (s *Service) GetAsset(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	return persistence.NewGormAssetRepository(s.db.DB).FindByID(ctx, id)
}

// ListAssets returns a page of assets
func (s *Service) ListAssets(ctx context.Context, filter shared.Filter) (*shared.Paginated[asset.Asset], error) {
	repo := persistence.NewGormAssetRepository(s.db.DB)
	assets, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(assets, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateAsset applies a partial update to an asset
func (s *Service) UpdateAsset(ctx context.Context, id uuid.UUID, input UpdateAssetInput) (*asset.Asset, error) {
	repo := persistence.NewGormAssetRepository(s.db.DB)
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Asset name cannot be empty")
		}
		a.Name = *input.Name
	}
	if input.Category != nil {
		a.Category = *input.Category
	}
	if input.DepreciationRate != nil {
		if input.DepreciationRate.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Depreciation rate cannot be negative")
		}
		a.DepreciationRate = *input.DepreciationRate
	}
	if input.Location != nil {
		a.Location = *input.Location
	}
	if input.Status != nil {
		status := asset.AssetStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Asset status is not valid")
		}
		a.Status = status
	}
	if input.AssignedTo != nil {
		a.AssignedTo = input.AssignedTo
	}
	if input.Notes != nil {
		a.Notes = *input.Notes
	}
	a.Touch()

	if err := repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAsset removes an asset and its depreciation and maintenance history
func (s *Service) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormAssetRepository(s.db.DB).Delete(ctx, id)
}

// CreateDepreciation records a depreciation period and moves the asset's
// current value to the new book value in one transaction. A zero book value
// input defaults to current value minus the depreciation amount.
func (s *Service) CreateDepreciation(ctx context.Context, assetID uuid.UUID, input DepreciationInput) (*asset.AssetDepreciation, error) {
	var created *asset.AssetDepreciation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		assetRepo := persistence.NewGormAssetRepository(tx)
		depRepo := persistence.NewGormDepreciationRepository(tx)

		a, err := assetRepo.FindByID(ctx, assetID)
		if err != nil {
			return err
		}

		bookValue := input.BookValueAfter
		if bookValue.IsZero() && !input.Amount.IsZero() {
			bookValue = a.CurrentValue.Sub(input.Amount)
		}
		periodDate := time.Now()
		if input.PeriodDate != nil {
			periodDate = *input.PeriodDate
		}
		d, err := asset.NewAssetDepreciation(assetID, periodDate, input.Amount, bookValue)
		if err != nil {
			return err
		}
		d.Notes = input.Notes

		if err := depRepo.Save(ctx, d); err != nil {
			return err
		}
		a.ApplyDepreciation(d)
		if err := assetRepo.Save(ctx, a); err != nil {
			return err
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("depreciation recorded",
		zap.String("asset_id", assetID.String()),
		zap.String("amount", input.Amount.String()))
	return created, nil
}

// GetDepreciation fetches a single depreciation entry
func (s *Service) GetDepreciation(ctx context.Context, id uuid.UUID) (*asset.AssetDepreciation, error) {
	return persistence.NewGormDepreciationRepository(s.db.DB).FindByID(ctx, id)
}

// ListDepreciations returns an asset's depreciation entries
func (s *Service) ListDepreciations(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]asset.AssetDepreciation, error) {
	if _, err := s.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}
	return persistence.NewGormDepreciationRepository(s.db.DB).FindByAsset(ctx, assetID, filter)
}

// UpdateDepreciation applies a partial update to a depreciation entry. A book
// value change moves the asset's current value with it.
func (s *Service) UpdateDepreciation(ctx context.Context, id uuid.UUID, input UpdateDepreciationInput) (*asset.AssetDepreciation, error) {
	var updated *asset.AssetDepreciation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		assetRepo := persistence.NewGormAssetRepository(tx)
		depRepo := persistence.NewGormDepreciationRepository(tx)

		d, err := depRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.PeriodDate != nil {
			d.PeriodDate = *input.PeriodDate
		}
		if input.Amount != nil {
			if input.Amount.IsNegative() {
				return shared.NewDomainError("VALIDATION_FAILED", "Depreciation amount cannot be negative")
			}
			d.Amount = *input.Amount
		}
		if input.Notes != nil {
			d.Notes = *input.Notes
		}
		if input.BookValueAfter != nil {
			if input.BookValueAfter.IsNegative() {
				return shared.NewDomainError("VALIDATION_FAILED", "Book value cannot be negative")
			}
			d.BookValueAfter = *input.BookValueAfter

			a, err := assetRepo.FindByID(ctx, d.AssetID)
			if err != nil {
				return err
			}
			a.ApplyDepreciation(d)
			if err := assetRepo.Save(ctx, a); err != nil {
				return err
			}
		}
		d.Touch()

		if err := depRepo.Save(ctx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteDepreciation removes a depreciation entry. The asset's current value
// is left as is; a correcting entry restates it.
func (s *Service) DeleteDepreciation(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormDepreciationRepository(s.db.DB).Delete(ctx, id)
}

// CreateMaintenance logs maintenance work on an asset
func (s *Service) CreateMaintenance(ctx context.Context, assetID uuid.UUID, input MaintenanceInput) (*asset.AssetMaintenance, error) {
	if _, err := s.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.MaintenanceDate != nil {
		date = *input.MaintenanceDate
	}
	m, err := asset.NewAssetMaintenance(assetID, date,
		asset.MaintenanceType(input.MaintenanceType), input.Description, input.Cost)
	if err != nil {
		return nil, err
	}
	m.PerformedBy = input.PerformedBy
	m.NextDueDate = input.NextDueDate

	if err := persistence.NewGormMaintenanceRepository(s.db.DB).Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMaintenance fetches a single maintenance record
func (s *Service) GetMaintenance(ctx context.Context, id uuid.UUID) (*asset.AssetMaintenance, error) {
	return persistence.NewGormMaintenanceRepository(s.db.DB).FindByID(ctx, id)
}

// UpdateMaintenance applies a partial update to a maintenance record
func (s *Service) UpdateMaintenance(ctx context.Context, id uuid.UUID, input UpdateMaintenanceInput) (*asset.AssetMaintenance, error) {
	repo := persistence.NewGormMaintenanceRepository(s.db.DB)
	m, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MaintenanceDate != nil {
		m.MaintenanceDate = *input.MaintenanceDate
	}
	if input.MaintenanceType != nil {
		if *input.MaintenanceType == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Maintenance type cannot be empty")
		}
		m.MaintenanceType = asset.MaintenanceType(*input.MaintenanceType)
	}
	if input.Description != nil {
		m.Description = *input.Description
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Maintenance cost cannot be negative")
		}
		m.Cost = *input.Cost
	}
	if input.PerformedBy != nil {
		m.PerformedBy = *input.PerformedBy
	}
	if input.NextDueDate != nil {
		m.NextDueDate = input.NextDueDate
	}
	m.Touch()

	if err := repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMaintenance returns an asset's maintenance records
func (s *Service) ListMaintenance(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]asset.AssetMaintenance, error) {
	if _, err := s.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}
	return persistence.NewGormMaintenanceRepository(s.db.DB).FindByAsset(ctx, assetID, filter)
}

// DeleteMaintenance removes a maintenance record
func (s *Service) DeleteMaintenance(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormMaintenanceRepository(s.db.DB).Delete(ctx, id)
}

package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/accounting"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountRepository implements accounting.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.ChartOfAccounts, error) {
	var a accounting.ChartOfAccounts
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// AccountCodeExists reports whether an account code is already taken
func (r *GormAccountRepository) AccountCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&accounting.ChartOfAccounts{}).
		Where("account_code = ?", code).Count(&count).Error
	return count > 0, err
}

// FindAll finds all accounts matching the filter
func (r *GormAccountRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.ChartOfAccounts, error) {
	var accounts []accounting.ChartOfAccounts
	query := applyFilter(r.db.WithContext(ctx).Model(&accounting.ChartOfAccounts{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(account_name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Count counts accounts matching the filter
func (r *GormAccountRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&accounting.ChartOfAccounts{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, a *accounting.ChartOfAccounts) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes an account
func (r *GormAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&accounting.ChartOfAccounts{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormJournalRepository implements accounting.JournalRepository using GORM
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GormJournalRepository
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// FindByID loads the journal entry with its ledger lines
func (r *GormJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.JournalEntry, error) {
	var j accounting.JournalEntry
	err := r.db.WithContext(ctx).Preload("Lines").First(&j, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// EntryNumberExists reports whether an entry number is already taken
func (r *GormJournalRepository) EntryNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&accounting.JournalEntry{}).
		Where("entry_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all journal entries matching the filter
func (r *GormJournalRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.JournalEntry, error) {
	var entries []accounting.JournalEntry
	query := applyFilter(r.db.WithContext(ctx).Model(&accounting.JournalEntry{}), filter)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Count counts journal entries matching the filter
func (r *GormJournalRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&accounting.JournalEntry{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates a journal entry together with its lines
func (r *GormJournalRepository) Save(ctx context.Context, j *accounting.JournalEntry) error {
	return r.db.WithContext(ctx).Save(j).Error
}

// Delete removes a journal entry and its lines
func (r *GormJournalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&accounting.JournalEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormFiscalPeriodRepository implements accounting.FiscalPeriodRepository using GORM
type GormFiscalPeriodRepository struct {
	db *gorm.DB
}

// NewGormFiscalPeriodRepository creates a new GormFiscalPeriodRepository
func NewGormFiscalPeriodRepository(db *gorm.DB) *GormFiscalPeriodRepository {
	return &GormFiscalPeriodRepository{db: db}
}

// FindByID finds a fiscal period by its ID
func (r *GormFiscalPeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.FiscalPeriod, error) {
	var p accounting.FiscalPeriod
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll finds all fiscal periods matching the filter
func (r *GormFiscalPeriodRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.FiscalPeriod, error) {
	var periods []accounting.FiscalPeriod
	query := applyFilter(r.db.WithContext(ctx).Model(&accounting.FiscalPeriod{}), filter)
	if err := query.Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

// Count counts fiscal periods matching the filter
func (r *GormFiscalPeriodRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&accounting.FiscalPeriod{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates a fiscal period
func (r *GormFiscalPeriodRepository) Save(ctx context.Context, p *accounting.FiscalPeriod) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes a fiscal period
func (r *GormFiscalPeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&accounting.FiscalPeriod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/member"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMemberRepository implements member.Repository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByID finds a member by its ID
func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	var m member.Member
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByMemberNumber finds a member by its member number
func (r *GormMemberRepository) FindByMemberNumber(ctx context.Context, number string) (*member.Member, error) {
	var m member.Member
	if err := r.db.WithContext(ctx).First(&m, "member_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// MemberNumberExists reports whether a member number is already taken
func (r *GormMemberRepository) MemberNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&member.Member{}).
		Where("member_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all members matching the filter
func (r *GormMemberRepository) FindAll(ctx context.Context, filter shared.Filter) ([]member.Member, error) {
	var members []member.Member
	query := applyFilter(r.db.WithContext(ctx).Model(&member.Member{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Count counts members matching the filter
func (r *GormMemberRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&member.Member{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates a member
func (r *GormMemberRepository) Save(ctx context.Context, m *member.Member) error {
	return r.db.WithContext(ctx).Omit("SavingsTransactions", "SHUDistributions").Save(m).Error
}

// Delete removes a member by its ID
func (r *GormMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&member.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormSavingsTransactionRepository implements member.SavingsTransactionRepository using GORM
type GormSavingsTransactionRepository struct {
	db *gorm.DB
}

// NewGormSavingsTransactionRepository creates a new GormSavingsTransactionRepository
func NewGormSavingsTransactionRepository(db *gorm.DB) *GormSavingsTransactionRepository {
	return &GormSavingsTransactionRepository{db: db}
}

// FindByID finds a savings transaction by its ID
func (r *GormSavingsTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*member.SavingsTransaction, error) {
	var tx member.SavingsTransaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindByMember finds a member's savings transactions
func (r *GormSavingsTransactionRepository) FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]member.SavingsTransaction, error) {
	var txs []member.SavingsTransaction
	query := applyFilter(
		r.db.WithContext(ctx).Model(&member.SavingsTransaction{}).Where("member_id = ?", memberID),
		filter,
	)
	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// CountByMember counts a member's savings transactions
func (r *GormSavingsTransactionRepository) CountByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(
		r.db.WithContext(ctx).Model(&member.SavingsTransaction{}).Where("member_id = ?", memberID),
		filter,
	)
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates a savings transaction
func (r *GormSavingsTransactionRepository) Save(ctx context.Context, tx *member.SavingsTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// GormSHUDistributionRepository implements member.SHUDistributionRepository using GORM
type GormSHUDistributionRepository struct {
	db *gorm.DB
}

// NewGormSHUDistributionRepository creates a new GormSHUDistributionRepository
func NewGormSHUDistributionRepository(db *gorm.DB) *GormSHUDistributionRepository {
	return &GormSHUDistributionRepository{db: db}
}

// FindByID finds a distribution by its ID
func (r *GormSHUDistributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*member.SHUDistribution, error) {
	var d member.SHUDistribution
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindAll finds all distributions matching the filter
func (r *GormSHUDistributionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]member.SHUDistribution, error) {
	var dists []member.SHUDistribution
	query := applyFilter(r.db.WithContext(ctx).Model(&member.SHUDistribution{}), filter)
	if err := query.Find(&dists).Error; err != nil {
		return nil, err
	}
	return dists, nil
}

// Count counts distributions matching the filter
func (r *GormSHUDistributionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&member.SHUDistribution{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates a distribution
func (r *GormSHUDistributionRepository) Save(ctx context.Context, d *member.SHUDistribution) error {
	return r.db.WithContext(ctx).Save(d).Error
}

package member

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for member persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	FindByMemberNumber(ctx context.Context, number string) (*Member, error)
	MemberNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Member, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavingsTransactionRepository defines the interface for savings transaction persistence
type SavingsTransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SavingsTransaction, error)
	FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]SavingsTransaction, error)
	CountByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, tx *SavingsTransaction) error
}

// SHUDistributionRepository defines the interface for SHU distribution persistence
type SHUDistributionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SHUDistribution, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SHUDistribution, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, d *SHUDistribution) error
}

package member

import (
	"context"
	"time"

	"github.com/coop-erp/backend/internal/domain/member"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles member, savings and profit-share use cases. Every balance
// mutation runs the child write and the member update in one transaction.
type Service struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewService creates a new member Service
func NewService(db *persistence.Database, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateMemberInput carries the fields for registering a member
type CreateMemberInput struct {
	Name               string     `json:"name" binding:"required"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	JoinDate           *time.Time `json:"join_date"`
	Status             string     `json:"status"`
	RegistrationMethod string     `json:"registration_method"`
}

// UpdateMemberInput carries a partial update; nil fields are left unchanged.
// Balances are never updated directly, only through transactions.
type UpdateMemberInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

// SavingsTransactionInput carries the fields for recording a savings movement
type SavingsTransactionInput struct {
	TransactionType string          `json:"transaction_type" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate *time.Time      `json:"transaction_date"`
	PaymentMethod   string          `json:"payment_method"`
	Reference       string          `json:"reference"`
	Notes           string          `json:"notes"`
}

// SHUDistributionInput carries the fields for allocating a profit share
type SHUDistributionInput struct {
	MemberID           uuid.UUID       `json:"member_id" binding:"required"`
	FiscalYear         int             `json:"fiscal_year" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	DistributionDate   *time.Time      `json:"distribution_date"`
	DistributionMethod string          `json:"distribution_method"`
	Status             string          `json:"status"`
	Notes              string          `json:"notes"`
}

// CreateMember registers a member with a generated member number
func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*member.Member, error) {
	repo := persistence.NewGormMemberRepository(s.db.DB)
	number, err := shared.GenerateDocumentNumber(shared.PrefixMember, func(n string) (bool, error) {
		return repo.MemberNumberExists(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	joinDate := time.Now()
	if input.JoinDate != nil {
		joinDate = *input.JoinDate
	}
	m, err := member.NewMember(number, input.Name, joinDate,
		member.MemberStatus(input.Status), member.RegistrationMethod(input.RegistrationMethod))
	if err != nil {
		return nil, err
	}
	m.Email = input.Email
	m.Phone = input.Phone
	m.Address = input.Address

	if err := repo.Save(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("member registered",
		zap.String("member_id", m.ID.String()),
		zap.String("member_number", m.MemberNumber))
	return m, nil
}

// GetMember fetches a member by ID
func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	return persistence.NewGormMemberRepository(s.db.DB).FindByID(ctx, id)
}

// ListMembers returns a page of members
func (s *Service) ListMembers(ctx context.Context, filter shared.Filter) (*shared.Paginated[member.Member], error) {
	repo := persistence.NewGormMemberRepository(s.db.DB)
	members, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(members, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateMember applies a partial update to a member
func (s *Service) UpdateMember(ctx context.Context, id uuid.UUID, input UpdateMemberInput) (*member.Member, error) {
	repo := persistence.NewGormMemberRepository(s.db.DB)
	m, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Member name cannot be empty")
		}
		m.Name = *input.Name
	}
	if input.Email != nil {
		m.Email = *input.Email
	}
	if input.Phone != nil {
		m.Phone = *input.Phone
	}
	if input.Address != nil {
		m.Address = *input.Address
	}
	if input.Status != nil {
		status := member.MemberStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Member status is not valid")
		}
		m.Status = status
	}
	m.Touch()

	if err := repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMember removes a member and, through FK constraints, their history
func (s *Service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormMemberRepository(s.db.DB).Delete(ctx, id)
}

// CreateSavingsTransaction records a savings movement and applies its balance
// effect to the member in one transaction. Withdrawals exceeding the member's
// voluntary savings are rejected and nothing is written.
func (s *Service) CreateSavingsTransaction(ctx context.Context, memberID uuid.UUID, input SavingsTransactionInput) (*member.SavingsTransaction, error) {
	var created *member.SavingsTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := persistence.NewGormMemberRepository(tx)
		txRepo := persistence.NewGormSavingsTransactionRepository(tx)

		m, err := memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return err
		}

		txType := member.TransactionType(input.TransactionType)
		if err := m.ApplySavingsTransaction(txType, input.Amount); err != nil {
			return err
		}

		date := time.Now()
		if input.TransactionDate != nil {
			date = *input.TransactionDate
		}
		st, err := member.NewSavingsTransaction(m.ID, txType, input.Amount, date,
			member.PaymentMethod(input.PaymentMethod))
		if err != nil {
			return err
		}
		st.Reference = input.Reference
		st.Notes = input.Notes

		if err := txRepo.Save(ctx, st); err != nil {
			return err
		}
		if err := memberRepo.Save(ctx, m); err != nil {
			return err
		}
		created = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("savings transaction recorded",
		zap.String("member_id", memberID.String()),
		zap.String("type", input.TransactionType),
		zap.String("amount", input.Amount.String()))
	return created, nil
}

// ListSavingsTransactions returns a page of a member's savings history
func (s *Service) ListSavingsTransactions(ctx context.Context, memberID uuid.UUID, filter shared.Filter) (*shared.Paginated[member.SavingsTransaction], error) {
	if _, err := s.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	repo := persistence.NewGormSavingsTransactionRepository(s.db.DB)
	txs, err := repo.FindByMember(ctx, memberID, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.CountByMember(ctx, memberID, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(txs, total, filter.Page, filter.Limit())
	return &page, nil
}

// CreateSHUDistribution allocates a profit share to a member. A distribution
// created directly in completed status credits the member immediately.
func (s *Service) CreateSHUDistribution(ctx context.Context, input SHUDistributionInput) (*member.SHUDistribution, error) {
	var created *member.SHUDistribution
	err := s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := persistence.NewGormMemberRepository(tx)
		distRepo := persistence.NewGormSHUDistributionRepository(tx)

		m, err := memberRepo.FindByID(ctx, input.MemberID)
		if err != nil {
			return err
		}

		date := time.Now()
		if input.DistributionDate != nil {
			date = *input.DistributionDate
		}
		d, err := member.NewSHUDistribution(m.ID, input.FiscalYear, input.Amount, date,
			member.DistributionMethod(input.DistributionMethod),
			member.DistributionStatus(input.Status))
		if err != nil {
			return err
		}
		d.Notes = input.Notes

		if err := distRepo.Save(ctx, d); err != nil {
			return err
		}
		if d.Status == member.DistributionStatusCompleted {
			m.ApplySHUDistribution(d)
			if err := memberRepo.Save(ctx, m); err != nil {
				return err
			}
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CompleteSHUDistribution transitions a pending distribution to completed and
// credits the member, all in one transaction
func (s *Service) CompleteSHUDistribution(ctx context.Context, id uuid.UUID) (*member.SHUDistribution, error) {
	var completed *member.SHUDistribution
	err := s.db.Transaction(func(tx *gorm.DB) error {
		memberRepo := persistence.NewGormMemberRepository(tx)
		distRepo := persistence.NewGormSHUDistributionRepository(tx)

		d, err := distRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := d.Complete(); err != nil {
			return err
		}

		m, err := memberRepo.FindByID(ctx, d.MemberID)
		if err != nil {
			return err
		}
		m.ApplySHUDistribution(d)

		if err := distRepo.Save(ctx, d); err != nil {
			return err
		}
		if err := memberRepo.Save(ctx, m); err != nil {
			return err
		}
		completed = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("shu distribution completed", zap.String("distribution_id", id.String()))
	return completed, nil
}

// ListSHUDistributions returns a page of distributions
func (s *Service) ListSHUDistributions(ctx context.Context, filter shared.Filter) (*shared.Paginated[member.SHUDistribution], error) {
	repo := persistence.NewGormSHUDistributionRepository(s.db.DB)
	dists, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(dists, total, filter.Page, filter.Limit())
	return &page, nil
}

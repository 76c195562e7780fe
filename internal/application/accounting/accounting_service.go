package accounting

import (
	"context"
	"time"

	"github.com/coop-erp/backend/internal/domain/accounting"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles the chart of accounts, journal entries and fiscal periods
type Service struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewService creates a new accounting Service
func NewService(db *persistence.Database, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateAccountInput carries the fields for creating a ledger account
type CreateAccountInput struct {
	AccountCode string `json:"account_code" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
	AccountType string `json:"account_type" binding:"required"`
	Description string `json:"description"`
}

// UpdateAccountInput carries a partial account update
type UpdateAccountInput struct {
	AccountName *string `json:"account_name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// LedgerLineInput is one debit or credit row of a journal entry
type LedgerLineInput struct {
	AccountID    uuid.UUID       `json:"account_id" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Description  string          `json:"description"`
}

// CreateJournalEntryInput carries the fields for creating a journal entry
type CreateJournalEntryInput struct {
	EntryDate   *time.Time        `json:"entry_date"`
	Description string            `json:"description"`
	Reference   string            `json:"reference"`
	Lines       []LedgerLineInput `json:"lines"`
}

// UpdateJournalEntryInput carries a partial update of a draft entry. A
// non-nil Lines slice replaces the full line list.
type UpdateJournalEntryInput struct {
	EntryDate   *time.Time        `json:"entry_date"`
	Description *string           `json:"description"`
	Reference   *string           `json:"reference"`
	Lines       []LedgerLineInput `json:"lines"`
}

// FiscalPeriodInput carries the fields for opening a fiscal period
type FiscalPeriodInput struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// CreateAccount creates a ledger account with a unique code
func (s *Service) CreateAccount(ctx context.Context, input CreateAccountInput) (*accounting.ChartOfAccounts, error) {
	repo := persistence.NewGormAccountRepository(s.db.DB)
	exists, err := repo.AccountCodeExists(ctx, input.AccountCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Account code is already taken")
	}

	a, err := accounting.NewChartOfAccounts(input.AccountCode, input.AccountName,
		accounting.AccountType(input.AccountType), input.Description)
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("ledger account created",
		zap.String("account_id", a.ID.String()),
		zap.String("account_code", a.AccountCode))
	return a, nil
}

// GetAccount fetches an account by ID
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*accounting.ChartOfAccounts, error) {
	return persistence.NewGormAccountRepository(s.db.DB).FindByID(ctx, id)
}

// ListAccounts returns a page of accounts
func (s *Service) ListAccounts(ctx context.Context, filter shared.Filter) (*shared.Paginated[accounting.ChartOfAccounts], error) {
	repo := persistence.NewGormAccountRepository(s.db.DB)
	accounts, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(accounts, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateAccount applies a partial update to an account
func (s *Service) UpdateAccount(ctx context.Context, id uuid.UUID, input UpdateAccountInput) (*accounting.ChartOfAccounts, error) {
	repo := persistence.NewGormAccountRepository(s.db.DB)
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AccountName != nil {
		if *input.AccountName == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Account name cannot be empty")
		}
		a.AccountName = *input.AccountName
	}
	if input.Description != nil {
		a.Description = *input.Description
	}
	if input.IsActive != nil {
		a.IsActive = *input.IsActive
	}
	a.Touch()

	if err := repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAccount removes an account
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormAccountRepository(s.db.DB).Delete(ctx, id)
}

// CreateJournalEntry creates a draft entry with its lines
func (s *Service) CreateJournalEntry(ctx context.Context, input CreateJournalEntryInput) (*accounting.JournalEntry, error) {
	var created *accounting.JournalEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := persistence.NewGormJournalRepository(tx)

		number, err := shared.GenerateDocumentNumber(shared.PrefixJournalEntry, func(n string) (bool, error) {
			return repo.EntryNumberExists(ctx, n)
		})
		if err != nil {
			return err
		}

		entryDate := time.Now()
		if input.EntryDate != nil {
			entryDate = *input.EntryDate
		}
		j, err := accounting.NewJournalEntry(number, entryDate, input.Description, input.Reference)
		if err != nil {
			return err
		}
		for _, line := range input.Lines {
			l, err := accounting.NewLedgerEntry(j.ID, line.AccountID,
				line.DebitAmount, line.CreditAmount, line.Description)
			if err != nil {
				return err
			}
			j.Lines = append(j.Lines, *l)
		}

		if err := repo.Save(ctx, j); err != nil {
			return err
		}
		created = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetJournalEntry fetches an entry with its lines
func (s *Service) GetJournalEntry(ctx context.Context, id uuid.UUID) (*accounting.JournalEntry, error) {
	return persistence.NewGormJournalRepository(s.db.DB).FindByID(ctx, id)
}

// ListJournalEntries returns a page of journal entries
func (s *Service) ListJournalEntries(ctx context.Context, filter shared.Filter) (*shared.Paginated[accounting.JournalEntry], error) {
	repo := persistence.NewGormJournalRepository(s.db.DB)
	entries, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(entries, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateJournalEntry applies a partial update to a draft entry. Posted
// entries are immutable.
func (s *Service) UpdateJournalEntry(ctx context.Context, id uuid.UUID, input UpdateJournalEntryInput) (*accounting.JournalEntry, error) {
	var updated *accounting.JournalEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := persistence.NewGormJournalRepository(tx)
		j, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if j.Status == accounting.JournalStatusPosted {
			return shared.NewDomainError("INVALID_STATE", "Posted journal entries cannot be modified")
		}

		if input.EntryDate != nil {
			j.EntryDate = *input.EntryDate
		}
		if input.Description != nil {
			j.Description = *input.Description
		}
		if input.Reference != nil {
			j.Reference = *input.Reference
		}
		if input.Lines != nil {
			if err := tx.Where("journal_entry_id = ?", j.ID).Delete(&accounting.LedgerEntry{}).Error; err != nil {
				return err
			}
			j.Lines = nil
			for _, line := range input.Lines {
				l, err := accounting.NewLedgerEntry(j.ID, line.AccountID,
					line.DebitAmount, line.CreditAmount, line.Description)
				if err != nil {
					return err
				}
				j.Lines = append(j.Lines, *l)
			}
		}
		j.Touch()

		if err := repo.Save(ctx, j); err != nil {
			return err
		}
		updated = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PostJournalEntry posts a balanced draft entry
func (s *Service) PostJournalEntry(ctx context.Context, id uuid.UUID) (*accounting.JournalEntry, error) {
	repo := persistence.NewGormJournalRepository(s.db.DB)
	j, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := j.Post(); err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, j); err != nil {
		return nil, err
	}
	s.logger.Info("journal entry posted",
		zap.String("entry_id", j.ID.String()),
		zap.String("entry_number", j.EntryNumber))
	return j, nil
}

// DeleteJournalEntry removes a draft entry and its lines. Posted entries
// cannot be deleted.
func (s *Service) DeleteJournalEntry(ctx context.Context, id uuid.UUID) error {
	repo := persistence.NewGormJournalRepository(s.db.DB)
	j, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if j.Status == accounting.JournalStatusPosted {
		return shared.NewDomainError("INVALID_STATE", "Posted journal entries cannot be deleted")
	}
	return repo.Delete(ctx, id)
}

// CreateFiscalPeriod opens a fiscal period
func (s *Service) CreateFiscalPeriod(ctx context.Context, input FiscalPeriodInput) (*accounting.FiscalPeriod, error) {
	p, err := accounting.NewFiscalPeriod(input.Name, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if err := persistence.NewGormFiscalPeriodRepository(s.db.DB).Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetFiscalPeriod fetches a period by ID
func (s *Service) GetFiscalPeriod(ctx context.Context, id uuid.UUID) (*accounting.FiscalPeriod, error) {
	return persistence.NewGormFiscalPeriodRepository(s.db.DB).FindByID(ctx, id)
}

// ListFiscalPeriods returns a page of fiscal periods
func (s *Service) ListFiscalPeriods(ctx context.Context, filter shared.Filter) (*shared.Paginated[accounting.FiscalPeriod], error) {
	repo := persistence.NewGormFiscalPeriodRepository(s.db.DB)
	periods, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(periods, total, filter.Page, filter.Limit())
	return &page, nil
}

// CloseFiscalPeriod transitions an open period to closed
func (s *Service) CloseFiscalPeriod(ctx context.Context, id uuid.UUID) (*accounting.FiscalPeriod, error) {
	repo := persistence.NewGormFiscalPeriodRepository(s.db.DB)
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Close(); err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("fiscal period closed", zap.String("period_id", p.ID.String()))
	return p, nil
}

// DeleteFiscalPeriod removes a fiscal period
func (s *Service) DeleteFiscalPeriod(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormFiscalPeriodRepository(s.db.DB).Delete(ctx, id)
}

package accounting

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for chart of accounts persistence
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ChartOfAccounts, error)
	AccountCodeExists(ctx context.Context, code string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ChartOfAccounts, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, a *ChartOfAccounts) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JournalRepository defines the interface for journal entry persistence.
// FindByID loads the entry with its ledger lines.
type JournalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JournalEntry, error)
	EntryNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]JournalEntry, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, j *JournalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FiscalPeriodRepository defines the interface for fiscal period persistence
type FiscalPeriodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FiscalPeriod, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]FiscalPeriod, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, p *FiscalPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

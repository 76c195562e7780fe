package accounting

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalStatus is the posting status of a journal entry
type JournalStatus string

const (
	JournalStatusDraft  JournalStatus = "draft"
	JournalStatusPosted JournalStatus = "posted"
)

// JournalEntry is one entry in the general journal with its ledger rows
type JournalEntry struct {
	shared.BaseEntity
	EntryNumber string        `json:"entry_number" gorm:"size:100;uniqueIndex;not null"`
	EntryDate   time.Time     `json:"entry_date" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text"`
	Reference   string        `json:"reference" gorm:"size:255"`
	Status      JournalStatus `json:"status" gorm:"size:50;default:'draft'"`

	Lines []LedgerEntry `json:"lines,omitempty" gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
}

// LedgerEntry is one debit or credit row of a journal entry
type LedgerEntry struct {
	shared.BaseEntity
	JournalEntryID uuid.UUID       `json:"journal_entry_id" gorm:"type:uuid;index;not null"`
	AccountID      uuid.UUID       `json:"account_id" gorm:"type:uuid;index;not null"`
	DebitAmount    decimal.Decimal `json:"debit_amount" gorm:"type:decimal(12,2);default:0"`
	CreditAmount   decimal.Decimal `json:"credit_amount" gorm:"type:decimal(12,2);default:0"`
	Description    string          `json:"description" gorm:"size:500"`
}

// NewJournalEntry creates a draft journal entry with no lines
func NewJournalEntry(entryNumber string, entryDate time.Time, description, reference string) (*JournalEntry, error) {
	if strings.TrimSpace(entryNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Entry number cannot be empty")
	}
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	return &JournalEntry{
		BaseEntity:  shared.NewBaseEntity(),
		EntryNumber: entryNumber,
		EntryDate:   entryDate,
		Description: description,
		Reference:   reference,
		Status:      JournalStatusDraft,
	}, nil
}

// NewLedgerEntry creates one debit/credit row. A row carries either a debit
// or a credit, never both.
func NewLedgerEntry(journalEntryID, accountID uuid.UUID, debit, credit decimal.Decimal, description string) (*LedgerEntry, error) {
	if journalEntryID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Journal entry is required")
	}
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Account is required")
	}
	if debit.IsNegative() || credit.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Amounts cannot be negative")
	}
	if debit.IsPositive() && credit.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "A line cannot carry both debit and credit")
	}
	if debit.IsZero() && credit.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "A line must carry a debit or a credit")
	}
	return &LedgerEntry{
		BaseEntity:     shared.NewBaseEntity(),
		JournalEntryID: journalEntryID,
		AccountID:      accountID,
		DebitAmount:    debit,
		CreditAmount:   credit,
		Description:    description,
	}, nil
}

// TotalDebit sums the debit side of the entry
func (j *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		total = total.Add(l.DebitAmount)
	}
	return total
}

// TotalCredit sums the credit side of the entry
func (j *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		total = total.Add(l.CreditAmount)
	}
	return total
}

// IsBalanced reports whether debits equal credits
func (j *JournalEntry) IsBalanced() bool {
	return j.TotalDebit().Equal(j.TotalCredit())
}

// Post marks a balanced draft entry as posted
func (j *JournalEntry) Post() error {
	if j.Status == JournalStatusPosted {
		return shared.NewDomainError("INVALID_STATE", "Journal entry is already posted")
	}
	if len(j.Lines) == 0 {
		return shared.NewDomainError("INVALID_STATE", "Journal entry has no lines")
	}
	if !j.IsBalanced() {
		return shared.NewDomainError("INVALID_STATE", "Journal entry debits and credits do not balance")
	}
	j.Status = JournalStatusPosted
	j.Touch()
	return nil
}

package member

import (
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a savings transaction
type TransactionType string

const (
	TransactionTypePrincipal  TransactionType = "principal"
	TransactionTypeMandatory  TransactionType = "mandatory"
	TransactionTypeVoluntary  TransactionType = "voluntary"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypePrincipal, TransactionTypeMandatory,
		TransactionTypeVoluntary, TransactionTypeWithdrawal:
		return true
	}
	return false
}

// PaymentMethod records how a savings transaction was paid
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodDeduct   PaymentMethod = "deduction"
)

// SavingsTransaction is the immutable record of a single savings movement.
// Balance effects live on the Member aggregate.
type SavingsTransaction struct {
	shared.BaseEntity
	MemberID        uuid.UUID       `json:"member_id" gorm:"type:uuid;index;not null"`
	TransactionType TransactionType `json:"transaction_type" gorm:"size:50;not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"not null"`
	PaymentMethod   PaymentMethod   `json:"payment_method" gorm:"size:50;default:'cash'"`
	Reference       string          `json:"reference" gorm:"size:255"`
	Notes           string          `json:"notes" gorm:"type:text"`
}

// NewSavingsTransaction records a savings movement for a member
func NewSavingsTransaction(memberID uuid.UUID, txType TransactionType, amount decimal.Decimal, date time.Time, method PaymentMethod) (*SavingsTransaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Transaction type is not valid")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Transaction amount must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}
	if method == "" {
		method = PaymentMethodCash
	}
	return &SavingsTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		MemberID:        memberID,
		TransactionType: txType,
		Amount:          amount,
		TransactionDate: date,
		PaymentMethod:   method,
	}, nil
}

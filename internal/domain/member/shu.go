package member

import (
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DistributionStatus is the lifecycle status of an SHU distribution
type DistributionStatus string

const (
	DistributionStatusPending   DistributionStatus = "pending"
	DistributionStatusCompleted DistributionStatus = "completed"
)

// DistributionMethod says how the profit share is paid out
type DistributionMethod string

const (
	DistributionMethodCash          DistributionMethod = "cash"
	DistributionMethodTransfer      DistributionMethod = "transfer"
	DistributionMethodAccountCredit DistributionMethod = "account_credit"
)

// IsValid checks if the method is a valid DistributionMethod
func (m DistributionMethod) IsValid() bool {
	switch m {
	case DistributionMethodCash, DistributionMethodTransfer, DistributionMethodAccountCredit:
		return true
	}
	return false
}

// SHUDistribution allocates a share of the cooperative's annual surplus
// (Sisa Hasil Usaha) to one member.
type SHUDistribution struct {
	shared.BaseEntity
	MemberID           uuid.UUID          `json:"member_id" gorm:"type:uuid;index;not null"`
	FiscalYear         int                `json:"fiscal_year" gorm:"not null"`
	Amount             decimal.Decimal    `json:"amount" gorm:"type:decimal(12,2);not null"`
	DistributionDate   time.Time          `json:"distribution_date" gorm:"not null"`
	DistributionMethod DistributionMethod `json:"distribution_method" gorm:"size:50;default:'account_credit'"`
	Status             DistributionStatus `json:"status" gorm:"size:50;default:'pending'"`
	Notes              string             `json:"notes" gorm:"type:text"`
}

// NewSHUDistribution creates a distribution for a member
func NewSHUDistribution(memberID uuid.UUID, fiscalYear int, amount decimal.Decimal, date time.Time, method DistributionMethod, status DistributionStatus) (*SHUDistribution, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Distribution amount must be positive")
	}
	if fiscalYear < 1900 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Fiscal year is not valid")
	}
	if method == "" {
		method = DistributionMethodAccountCredit
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Distribution method is not valid")
	}
	if status == "" {
		status = DistributionStatusPending
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &SHUDistribution{
		BaseEntity:         shared.NewBaseEntity(),
		MemberID:           memberID,
		FiscalYear:         fiscalYear,
		Amount:             amount,
		DistributionDate:   date,
		DistributionMethod: method,
		Status:             status,
	}, nil
}

// Complete marks a pending distribution as completed. Completing twice is
// rejected so the member balance is only credited once.
func (d *SHUDistribution) Complete() error {
	if d.Status == DistributionStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Distribution is already completed")
	}
	d.Status = DistributionStatusCompleted
	d.Touch()
	return nil
}

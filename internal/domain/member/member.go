package member

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MemberStatus represents the membership lifecycle status
type MemberStatus string

const (
	MemberStatusCandidate MemberStatus = "calon_anggota" // prospective member
	MemberStatusActive    MemberStatus = "anggota"
	MemberStatusBoard     MemberStatus = "pengurus" // board member
	MemberStatusInactive  MemberStatus = "inactive"
	MemberStatusSuspended MemberStatus = "suspended"
)

// IsValid checks if the status is a valid MemberStatus
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusCandidate, MemberStatusActive, MemberStatusBoard,
		MemberStatusInactive, MemberStatusSuspended:
		return true
	}
	return false
}

// RegistrationMethod records how the member was registered
type RegistrationMethod string

const (
	RegistrationMethodWeb    RegistrationMethod = "web"
	RegistrationMethodMobile RegistrationMethod = "mobile"
	RegistrationMethodOffice RegistrationMethod = "office"
)

// Member represents a cooperative member and the running balances of their
// savings accounts. Balances are adjusted incrementally when transactions are
// applied; they are not replayed from transaction history.
type Member struct {
	shared.BaseEntity
	MemberNumber       string             `json:"member_number" gorm:"size:100;uniqueIndex;not null"`
	Name               string             `json:"name" gorm:"size:255;not null"`
	Email              string             `json:"email" gorm:"size:255"`
	Phone              string             `json:"phone" gorm:"size:20"`
	Address            string             `json:"address" gorm:"type:text"`
	JoinDate           time.Time          `json:"join_date" gorm:"not null"`
	Status             MemberStatus       `json:"status" gorm:"size:50;default:'calon_anggota'"`
	PrincipalSavings   decimal.Decimal    `json:"principal_savings" gorm:"type:decimal(12,2);default:0"`
	MandatorySavings   decimal.Decimal    `json:"mandatory_savings" gorm:"type:decimal(12,2);default:0"`
	VoluntarySavings   decimal.Decimal    `json:"voluntary_savings" gorm:"type:decimal(12,2);default:0"`
	UnpaidMandatory    decimal.Decimal    `json:"unpaid_mandatory" gorm:"type:decimal(12,2);default:0"`
	SHUBalance         decimal.Decimal    `json:"shu_balance" gorm:"type:decimal(12,2);default:0"`
	RegistrationMethod RegistrationMethod `json:"registration_method" gorm:"size:50;default:'web'"`

	SavingsTransactions []SavingsTransaction `json:"savings_transactions,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	SHUDistributions    []SHUDistribution    `json:"shu_distributions,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// NewMember creates a new member with zeroed balances
func NewMember(memberNumber, name string, joinDate time.Time, status MemberStatus, method RegistrationMethod) (*Member, error) {
	if strings.TrimSpace(memberNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Member number cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Member name cannot be empty")
	}
	if status == "" {
		status = MemberStatusCandidate
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Member status is not valid")
	}
	if joinDate.IsZero() {
		joinDate = time.Now()
	}
	if method == "" {
		method = RegistrationMethodWeb
	}
	return &Member{
		BaseEntity:         shared.NewBaseEntity(),
		MemberNumber:       memberNumber,
		Name:               name,
		JoinDate:           joinDate,
		Status:             status,
		PrincipalSavings:   decimal.Zero,
		MandatorySavings:   decimal.Zero,
		VoluntarySavings:   decimal.Zero,
		UnpaidMandatory:    decimal.Zero,
		SHUBalance:         decimal.Zero,
		RegistrationMethod: method,
	}, nil
}

// ApplySavingsTransaction mutates the member's running balances for a savings
// transaction. Withdrawal is the only type with a balance precondition; it is
// rejected with INSUFFICIENT_FUNDS and leaves every balance untouched.
func (m *Member) ApplySavingsTransaction(txType TransactionType, amount decimal.Decimal) error {
	if !txType.IsValid() {
		return shared.NewDomainError("VALIDATION_FAILED", "Transaction type is not valid")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_FAILED", "Transaction amount must be positive")
	}

	switch txType {
	case TransactionTypePrincipal:
		m.PrincipalSavings = m.PrincipalSavings.Add(amount)
	case TransactionTypeMandatory:
		m.MandatorySavings = m.MandatorySavings.Add(amount)
		if m.UnpaidMandatory.GreaterThan(decimal.Zero) {
			reduction := decimal.Min(amount, m.UnpaidMandatory)
			m.UnpaidMandatory = m.UnpaidMandatory.Sub(reduction)
		}
	case TransactionTypeVoluntary:
		m.VoluntarySavings = m.VoluntarySavings.Add(amount)
	case TransactionTypeWithdrawal:
		if m.VoluntarySavings.LessThan(amount) {
			return shared.NewDomainError("INSUFFICIENT_FUNDS", "Insufficient voluntary savings for withdrawal")
		}
		m.VoluntarySavings = m.VoluntarySavings.Sub(amount)
	}

	m.Touch()
	return nil
}

// ApplySHUDistribution credits a completed profit-share distribution to the
// member: the SHU balance always, and voluntary savings as well when the
// distribution method is account credit. Pending distributions have no effect.
func (m *Member) ApplySHUDistribution(d *SHUDistribution) {
	if d.Status != DistributionStatusCompleted {
		return
	}
	m.SHUBalance = m.SHUBalance.Add(d.Amount)
	if d.DistributionMethod == DistributionMethodAccountCredit {
		m.VoluntarySavings = m.VoluntarySavings.Add(d.Amount)
	}
	m.Touch()
}

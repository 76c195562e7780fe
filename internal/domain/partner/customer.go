package partner

import (
	"strings"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PartnerStatus represents the lifecycle status of a business partner
type PartnerStatus string

const (
	PartnerStatusActive   PartnerStatus = "active"
	PartnerStatusInactive PartnerStatus = "inactive"
)

// IsValid checks if the status is a valid PartnerStatus
func (s PartnerStatus) IsValid() bool {
	return s == PartnerStatusActive || s == PartnerStatusInactive
}

// Customer represents a business customer
type Customer struct {
	shared.BaseEntity
	Name          string          `json:"name" gorm:"size:255;not null"`
	ContactPerson string          `json:"contact_person" gorm:"size:255"`
	Email         string          `json:"email" gorm:"size:255"`
	Phone         string          `json:"phone" gorm:"size:20"`
	Address       string          `json:"address" gorm:"type:text"`
	PaymentTerms  string          `json:"payment_terms" gorm:"size:255"`
	CreditLimit   decimal.Decimal `json:"credit_limit" gorm:"type:decimal(12,2);default:0"`
	TaxID         string          `json:"tax_id" gorm:"size:255"`
	Status        PartnerStatus   `json:"status" gorm:"size:50;default:'active'"`
}

// NewCustomer creates a new customer
func NewCustomer(name string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Customer name cannot be empty")
	}
	return &Customer{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		CreditLimit: decimal.Zero,
		Status:      PartnerStatusActive,
	}, nil
}

package partner

import (
	"strings"

	"github.com/coop-erp/backend/internal/domain/shared"
)

// Supplier represents a business supplier
type Supplier struct {
	shared.BaseEntity
	Name          string        `json:"name" gorm:"size:255;not null"`
	ContactPerson string        `json:"contact_person" gorm:"size:255"`
	Email         string        `json:"email" gorm:"size:255"`
	Phone         string        `json:"phone" gorm:"size:20"`
	Address       string        `json:"address" gorm:"type:text"`
	PaymentTerms  string        `json:"payment_terms" gorm:"size:255"`
	TaxID         string        `json:"tax_id" gorm:"size:255"`
	BankAccount   string        `json:"bank_account" gorm:"size:255"`
	Status        PartnerStatus `json:"status" gorm:"size:50;default:'active'"`
}

// NewSupplier creates a new supplier
func NewSupplier(name string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Supplier name cannot be empty")
	}
	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Status:     PartnerStatusActive,
	}, nil
}

package accounting

import (
	"strings"

	"github.com/coop-erp/backend/internal/domain/shared"
)

// AccountType classifies a ledger account
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// IsValid checks if the type is a valid AccountType
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// ChartOfAccounts is one account in the ledger's chart
type ChartOfAccounts struct {
	shared.BaseEntity
	AccountCode string      `json:"account_code" gorm:"size:50;uniqueIndex;not null"`
	AccountName string      `json:"account_name" gorm:"size:255;not null"`
	AccountType AccountType `json:"account_type" gorm:"size:50;not null"`
	Description string      `json:"description" gorm:"type:text"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
}

// NewChartOfAccounts creates an active account
func NewChartOfAccounts(code, name string, accountType AccountType, description string) (*ChartOfAccounts, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Account code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Account type is not valid")
	}
	return &ChartOfAccounts{
		BaseEntity:  shared.NewBaseEntity(),
		AccountCode: code,
		AccountName: name,
		AccountType: accountType,
		Description: description,
		IsActive:    true,
	}, nil
}

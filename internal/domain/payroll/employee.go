package payroll

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus is the employment status
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

// IsValid checks if the status is a valid EmployeeStatus
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusOnLeave, EmployeeStatusTerminated:
		return true
	}
	return false
}

// Employee is a cooperative staff member on the payroll
type Employee struct {
	shared.BaseEntity
	EmployeeNumber string          `json:"employee_number" gorm:"size:100;uniqueIndex;not null"`
	Name           string          `json:"name" gorm:"size:255;not null"`
	Position       string          `json:"position" gorm:"size:255"`
	Department     string          `json:"department" gorm:"size:255"`
	HireDate       time.Time       `json:"hire_date" gorm:"not null"`
	BaseSalary     decimal.Decimal `json:"base_salary" gorm:"type:decimal(12,2);default:0"`
	BankAccount    string          `json:"bank_account" gorm:"size:255"`
	Status         EmployeeStatus  `json:"status" gorm:"size:50;default:'active'"`
}

// NewEmployee creates an active employee
func NewEmployee(employeeNumber, name, position string, hireDate time.Time, baseSalary decimal.Decimal) (*Employee, error) {
	if strings.TrimSpace(employeeNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Employee number cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Employee name cannot be empty")
	}
	if baseSalary.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Base salary cannot be negative")
	}
	if hireDate.IsZero() {
		hireDate = time.Now()
	}
	return &Employee{
		BaseEntity:     shared.NewBaseEntity(),
		EmployeeNumber: employeeNumber,
		Name:           name,
		Position:       position,
		HireDate:       hireDate,
		BaseSalary:     baseSalary,
		Status:         EmployeeStatusActive,
	}, nil
}

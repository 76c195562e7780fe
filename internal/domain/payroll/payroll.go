package payroll

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollStatus is the processing status of a payroll run
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// IsValid checks if the status is a valid PayrollStatus
func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusDraft, PayrollStatusProcessed, PayrollStatusPaid:
		return true
	}
	return false
}

// Payroll is one payroll run for a fiscal period. TotalAmount tracks the sum
// of its items' net salaries and is adjusted incrementally, item by item,
// rather than recomputed from the full item list.
type Payroll struct {
	shared.BaseEntity
	PeriodID    uuid.UUID       `json:"period_id" gorm:"type:uuid;index;not null"`
	PayrollDate time.Time       `json:"payroll_date" gorm:"not null"`
	Status      PayrollStatus   `json:"status" gorm:"size:50;default:'draft'"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	Notes       string          `json:"notes" gorm:"type:text"`

	Items []PayrollItem `json:"items,omitempty" gorm:"foreignKey:PayrollID;constraint:OnDelete:CASCADE"`
}

// PayrollItem is one employee's line on a payroll run
type PayrollItem struct {
	shared.BaseEntity
	PayrollID   uuid.UUID       `json:"payroll_id" gorm:"type:uuid;index;not null"`
	EmployeeID  uuid.UUID       `json:"employee_id" gorm:"type:uuid;index;not null"`
	GrossSalary decimal.Decimal `json:"gross_salary" gorm:"type:decimal(12,2);not null"`
	Deductions  decimal.Decimal `json:"deductions" gorm:"type:decimal(12,2);default:0"`
	NetSalary   decimal.Decimal `json:"net_salary" gorm:"type:decimal(12,2);not null"`
	Notes       string          `json:"notes" gorm:"type:text"`
}

// NewPayroll creates a draft payroll run for a fiscal period
func NewPayroll(periodID uuid.UUID, payrollDate time.Time, notes string) (*Payroll, error) {
	if periodID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Fiscal period is required")
	}
	if payrollDate.IsZero() {
		payrollDate = time.Now()
	}
	return &Payroll{
		BaseEntity:  shared.NewBaseEntity(),
		PeriodID:    periodID,
		PayrollDate: payrollDate,
		Status:      PayrollStatusDraft,
		TotalAmount: decimal.Zero,
		Notes:       strings.TrimSpace(notes),
	}, nil
}

// NewPayrollItem creates an item with net = gross - deductions
func NewPayrollItem(payrollID, employeeID uuid.UUID, grossSalary, deductions decimal.Decimal) (*PayrollItem, error) {
	if payrollID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Payroll is required")
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Employee is required")
	}
	if grossSalary.IsNegative() || deductions.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Salary amounts cannot be negative")
	}
	if deductions.GreaterThan(grossSalary) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Deductions cannot exceed gross salary")
	}
	return &PayrollItem{
		BaseEntity:  shared.NewBaseEntity(),
		PayrollID:   payrollID,
		EmployeeID:  employeeID,
		GrossSalary: grossSalary,
		Deductions:  deductions,
		NetSalary:   grossSalary.Sub(deductions),
	}, nil
}

// AddItemAmount adjusts the payroll total when an item is added
func (p *Payroll) AddItemAmount(net decimal.Decimal) {
	p.TotalAmount = p.TotalAmount.Add(net)
	p.Touch()
}

// AdjustItemAmount adjusts the payroll total when an item's net salary
// changes from oldNet to newNet
func (p *Payroll) AdjustItemAmount(oldNet, newNet decimal.Decimal) {
	p.TotalAmount = p.TotalAmount.Add(newNet.Sub(oldNet))
	p.Touch()
}

// RemoveItemAmount adjusts the payroll total when an item is deleted
func (p *Payroll) RemoveItemAmount(net decimal.Decimal) {
	p.TotalAmount = p.TotalAmount.Sub(net)
	p.Touch()
}

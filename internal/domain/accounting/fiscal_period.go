package accounting

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
)

// PeriodStatus is the open/closed status of a fiscal period
type PeriodStatus string

const (
	PeriodStatusOpen   PeriodStatus = "open"
	PeriodStatusClosed PeriodStatus = "closed"
)

// FiscalPeriod is an accounting period bounded by start and end dates
type FiscalPeriod struct {
	shared.BaseEntity
	Name      string       `json:"name" gorm:"size:100;not null"`
	StartDate time.Time    `json:"start_date" gorm:"not null"`
	EndDate   time.Time    `json:"end_date" gorm:"not null"`
	Status    PeriodStatus `json:"status" gorm:"size:50;default:'open'"`
}

// NewFiscalPeriod creates an open period
func NewFiscalPeriod(name string, start, end time.Time) (*FiscalPeriod, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Period name cannot be empty")
	}
	if start.IsZero() || end.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Period dates are required")
	}
	if !end.After(start) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Period end must be after its start")
	}
	return &FiscalPeriod{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		Status:     PeriodStatusOpen,
	}, nil
}

// Close marks an open period as closed
func (p *FiscalPeriod) Close() error {
	if p.Status == PeriodStatusClosed {
		return shared.NewDomainError("INVALID_STATE", "Fiscal period is already closed")
	}
	p.Status = PeriodStatusClosed
	p.Touch()
	return nil
}

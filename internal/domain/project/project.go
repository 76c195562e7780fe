package project

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// IsValid checks if the status is a valid ProjectStatus
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project tracks a customer engagement. TotalInvoiced is denormalized from
// the totals of its invoices and recomputed on every invoice change.
type Project struct {
	shared.BaseEntity
	ProjectNumber string          `json:"project_number" gorm:"size:100;uniqueIndex;not null"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	CustomerID    uuid.UUID       `json:"customer_id" gorm:"type:uuid;index;not null"`
	Description   string          `json:"description" gorm:"type:text"`
	StartDate     *time.Time      `json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	Status        ProjectStatus   `json:"status" gorm:"size:50;default:'planning'"`
	BudgetAmount  decimal.Decimal `json:"budget_amount" gorm:"type:decimal(12,2);default:0"`
	TotalInvoiced decimal.Decimal `json:"total_invoiced" gorm:"type:decimal(12,2);default:0"`
	// TotalCost is reported but has no cost feed yet; it stays zero until
	// purchase or payroll allocations are tied to projects.
	TotalCost decimal.Decimal `json:"total_cost" gorm:"type:decimal(12,2);default:0"`

	Tasks    []ProjectTask    `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Invoices []ProjectInvoice `json:"invoices,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// NewProject creates a project in planning status
func NewProject(projectNumber, name string, customerID uuid.UUID, budget decimal.Decimal) (*Project, error) {
	if strings.TrimSpace(projectNumber) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Project number cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Project name cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Customer is required")
	}
	if budget.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Budget amount cannot be negative")
	}
	return &Project{
		BaseEntity:    shared.NewBaseEntity(),
		ProjectNumber: projectNumber,
		Name:          name,
		CustomerID:    customerID,
		Status:        ProjectStatusPlanning,
		BudgetAmount:  budget,
		TotalInvoiced: decimal.Zero,
		TotalCost:     decimal.Zero,
	}, nil
}

// RecalcTotalInvoiced recomputes the project's invoiced total as the sum of
// all invoice grand totals. Call after any invoice create, update or delete.
func (p *Project) RecalcTotalInvoiced() {
	total := decimal.Zero
	for _, inv := range p.Invoices {
		total = total.Add(inv.TotalAmount)
	}
	p.TotalInvoiced = total
	p.Touch()
}

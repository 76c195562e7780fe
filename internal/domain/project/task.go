package project

import (
	"strings"
	"time"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskStatus is the lifecycle status of a project task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid checks if the status is a valid TaskStatus
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

// ProjectTask is a unit of work inside a project. ActualHours is denormalized
// from the task's time entries.
type ProjectTask struct {
	shared.BaseEntity
	ProjectID      uuid.UUID       `json:"project_id" gorm:"type:uuid;index;not null"`
	Name           string          `json:"name" gorm:"size:255;not null"`
	Description    string          `json:"description" gorm:"type:text"`
	EstimatedHours decimal.Decimal `json:"estimated_hours" gorm:"type:decimal(12,2);default:0"`
	ActualHours    decimal.Decimal `json:"actual_hours" gorm:"type:decimal(12,2);default:0"`
	HourlyRate     decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(12,2);default:0"`
	Status         TaskStatus      `json:"status" gorm:"size:50;default:'todo'"`
	DueDate        *time.Time      `json:"due_date"`

	TimeEntries []ProjectTimeEntry `json:"time_entries,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// NewProjectTask creates a task in todo status
func NewProjectTask(projectID uuid.UUID, name string, estimatedHours, hourlyRate decimal.Decimal) (*ProjectTask, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Project is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Task name cannot be empty")
	}
	if estimatedHours.IsNegative() || hourlyRate.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Hours and rate cannot be negative")
	}
	return &ProjectTask{
		BaseEntity:     shared.NewBaseEntity(),
		ProjectID:      projectID,
		Name:           name,
		EstimatedHours: estimatedHours,
		ActualHours:    decimal.Zero,
		HourlyRate:     hourlyRate,
		Status:         TaskStatusTodo,
	}, nil
}

// RecalcActualHours recomputes the task's actual hours as the full sum of its
// time entries. Call after any entry create, update or delete.
func (t *ProjectTask) RecalcActualHours() {
	total := decimal.Zero
	for _, e := range t.TimeEntries {
		total = total.Add(e.Hours)
	}
	t.ActualHours = total
	t.Touch()
}

// ProjectTimeEntry logs hours a member spent on a task
type ProjectTimeEntry struct {
	shared.BaseEntity
	TaskID    uuid.UUID       `json:"task_id" gorm:"type:uuid;index;not null"`
	MemberID  uuid.UUID       `json:"member_id" gorm:"type:uuid;index;not null"`
	EntryDate time.Time       `json:"entry_date" gorm:"not null"`
	Hours     decimal.Decimal `json:"hours" gorm:"type:decimal(12,2);not null"`
	Billable  bool            `json:"billable" gorm:"default:true"`
	Notes     string          `json:"notes" gorm:"type:text"`
}

// NewProjectTimeEntry logs hours against a task
func NewProjectTimeEntry(taskID, memberID uuid.UUID, entryDate time.Time, hours decimal.Decimal, billable bool) (*ProjectTimeEntry, error) {
	if taskID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Task is required")
	}
	if memberID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Member is required")
	}
	if hours.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Hours must be positive")
	}
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	return &ProjectTimeEntry{
		BaseEntity: shared.NewBaseEntity(),
		TaskID:     taskID,
		MemberID:   memberID,
		EntryDate:  entryDate,
		Hours:      hours,
		Billable:   billable,
	}, nil
}

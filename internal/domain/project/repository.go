package project

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for project persistence.
// FindByID loads the project with its invoices so totals can be recomputed.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	ProjectNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the interface for project task persistence.
// FindByID loads the task with its time entries.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectTask, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]ProjectTask, error)
	CountByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, t *ProjectTask) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimeEntryRepository defines the interface for time entry persistence
type TimeEntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectTimeEntry, error)
	FindByTask(ctx context.Context, taskID uuid.UUID, filter shared.Filter) ([]ProjectTimeEntry, error)
	Save(ctx context.Context, e *ProjectTimeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository defines the interface for project invoice persistence.
// FindByID loads the invoice with its items and payments.
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectInvoice, error)
	InvoiceNumberExists(ctx context.Context, number string) (bool, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]ProjectInvoice, error)
	Save(ctx context.Context, inv *ProjectInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoicePaymentRepository defines the interface for project invoice payment persistence
type InvoicePaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectInvoicePayment, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]ProjectInvoicePayment, error)
	Save(ctx context.Context, payment *ProjectInvoicePayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package project

import (
	"context"
	"time"

	"github.com/coop-erp/backend/internal/domain/project"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles projects, tasks, time entries and project invoices. Time
// entry mutations re-derive the task's actual hours; invoice and payment
// mutations re-derive the invoice totals and the project's invoiced total,
// each in one transaction with the child write.
type Service struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewService creates a new project Service
func NewService(db *persistence.Database, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateProjectInput carries the fields for creating a project
type CreateProjectInput struct {
	Name         string          `json:"name" binding:"required"`
	CustomerID   uuid.UUID       `json:"customer_id" binding:"required"`
	Description  string          `json:"description"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
}

// UpdateProjectInput carries a partial update; nil fields are left unchanged.
// TotalInvoiced is never updated directly, only through invoices.
type UpdateProjectInput struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	Status       *string          `json:"status"`
	BudgetAmount *decimal.Decimal `json:"budget_amount"`
}

// CreateTaskInput carries the fields for creating a task
type CreateTaskInput struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	DueDate        *time.Time      `json:"due_date"`
}

// UpdateTaskInput carries a partial task update
type UpdateTaskInput struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	Status         *string          `json:"status"`
	DueDate        *time.Time       `json:"due_date"`
}

// TimeEntryInput carries the fields for logging hours
type TimeEntryInput struct {
	MemberID  uuid.UUID       `json:"member_id" binding:"required"`
	EntryDate *time.Time      `json:"entry_date"`
	Hours     decimal.Decimal `json:"hours" binding:"required"`
	Billable  *bool           `json:"billable"`
	Notes     string          `json:"notes"`
}

// UpdateTimeEntryInput carries a partial time entry update
type UpdateTimeEntryInput struct {
	EntryDate *time.Time       `json:"entry_date"`
	Hours     *decimal.Decimal `json:"hours"`
	Billable  *bool            `json:"billable"`
	Notes     *string          `json:"notes"`
}

// InvoiceItemInput is one line of a project invoice
type InvoiceItemInput struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceInput carries the fields for invoicing a project
type CreateInvoiceInput struct {
	InvoiceDate *time.Time         `json:"invoice_date"`
	DueDate     *time.Time         `json:"due_date"`
	TaxAmount   decimal.Decimal    `json:"tax_amount"`
	Notes       string             `json:"notes"`
	Items       []InvoiceItemInput `json:"items"`
}

// UpdateInvoiceInput carries a partial invoice update. A non-nil Items slice
// replaces the item list and recomputes totals up to the project.
type UpdateInvoiceInput struct {
	InvoiceDate *time.Time         `json:"invoice_date"`
	DueDate     *time.Time         `json:"due_date"`
	TaxAmount   *decimal.Decimal   `json:"tax_amount"`
	Notes       *string            `json:"notes"`
	Items       []InvoiceItemInput `json:"items"`
}

// PaymentInput carries the fields for recording a payment
type PaymentInput struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate   *time.Time      `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
}

// UpdatePaymentInput carries a partial payment update. An amount change
// re-derives the invoice payment status.
type UpdatePaymentInput struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time       `json:"payment_date"`
	PaymentMethod *string          `json:"payment_method"`
	Reference     *string          `json:"reference"`
}

// CreateProject creates a project with a generated project number
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*project.Project, error) {
	repo := persistence.NewGormProjectRepository(s.db.DB)
	number, err := shared.GenerateDocumentNumber(shared.PrefixProject, func(n string) (bool, error) {
		return repo.ProjectNumberExists(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	p, err := project.NewProject(number, input.Name, input.CustomerID, input.BudgetAmount)
	if err != nil {
		return nil, err
	}
	p.Description = input.Description
	p.StartDate = input.StartDate
	p.EndDate = input.EndDate

	if err := repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("project created",
		zap.String("project_id", p.ID.String()),
		zap.String("project_number", p.ProjectNumber))
	return p, nil
}

// GetProject fetches a project by ID
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return persistence.NewGormProjectRepository(s.db.DB).FindByID(ctx, id)
}

// ListProjects returns a page of projects
func (s *Service) ListProjects(ctx context.Context, filter shared.Filter) (*shared.Paginated[project.Project], error) {
	repo := persistence.NewGormProjectRepository(s.db.DB)
	projects, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(projects, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateProject applies a partial update to a project
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*project.Project, error) {
	repo := persistence.NewGormProjectRepository(s.db.DB)
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Project name cannot be empty")
		}
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.StartDate != nil {
		p.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		p.EndDate = input.EndDate
	}
	if input.Status != nil {
		status := project.ProjectStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Project status is not valid")
		}
		p.Status = status
	}
	if input.BudgetAmount != nil {
		if input.BudgetAmount.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Budget amount cannot be negative")
		}
		p.BudgetAmount = *input.BudgetAmount
	}
	p.Touch()

	if err := repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProject removes a project and its tasks and invoices
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormProjectRepository(s.db.DB).Delete(ctx, id)
}

// CreateTask adds a task to a project
func (s *Service) CreateTask(ctx context.Context, projectID uuid.UUID, input CreateTaskInput) (*project.ProjectTask, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	t, err := project.NewProjectTask(projectID, input.Name, input.EstimatedHours, input.HourlyRate)
	if err != nil {
		return nil, err
	}
	t.Description = input.Description
	t.DueDate = input.DueDate

	if err := persistence.NewGormProjectTaskRepository(s.db.DB).Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTask fetches a task with its time entries
func (s *Service) GetTask(ctx context.Context, id uuid.UUID) (*project.ProjectTask, error) {
	return persistence.NewGormProjectTaskRepository(s.db.DB).FindByID(ctx, id)
}

// ListTasks returns a page of a project's tasks
func (s *Service) ListTasks(ctx context.Context, projectID uuid.UUID, filter shared.Filter) (*shared.Paginated[project.ProjectTask], error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	repo := persistence.NewGormProjectTaskRepository(s.db.DB)
	tasks, err := repo.FindByProject(ctx, projectID, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.CountByProject(ctx, projectID, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(tasks, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateTask applies a partial update to a task
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*project.ProjectTask, error) {
	repo := persistence.NewGormProjectTaskRepository(s.db.DB)
	t, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Task name cannot be empty")
		}
		t.Name = *input.Name
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.EstimatedHours != nil {
		if input.EstimatedHours.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Estimated hours cannot be negative")
		}
		t.EstimatedHours = *input.EstimatedHours
	}
	if input.HourlyRate != nil {
		if input.HourlyRate.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Hourly rate cannot be negative")
		}
		t.HourlyRate = *input.HourlyRate
	}
	if input.Status != nil {
		status := project.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Task status is not valid")
		}
		t.Status = status
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	t.Touch()

	if err := repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTask removes a task and its time entries
func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormProjectTaskRepository(s.db.DB).Delete(ctx, id)
}

// CreateTimeEntry logs hours against a task and re-derives the task's actual
// hours in the same transaction
func (s *Service) CreateTimeEntry(ctx context.Context, taskID uuid.UUID, input TimeEntryInput) (*project.ProjectTimeEntry, error) {
	var created *project.ProjectTimeEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		taskRepo := persistence.NewGormProjectTaskRepository(tx)
		entryRepo := persistence.NewGormTimeEntryRepository(tx)

		if _, err := taskRepo.FindByID(ctx, taskID); err != nil {
			return err
		}

		date := time.Now()
		if input.EntryDate != nil {
			date = *input.EntryDate
		}
		billable := true
		if input.Billable != nil {
			billable = *input.Billable
		}
		e, err := project.NewProjectTimeEntry(taskID, input.MemberID, date, input.Hours, billable)
		if err != nil {
			return err
		}
		e.Notes = input.Notes

		if err := entryRepo.Save(ctx, e); err != nil {
			return err
		}
		if err := s.propagateToTask(ctx, tx, taskID); err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListTimeEntries returns a task's time entries
func (s *Service) ListTimeEntries(ctx context.Context, taskID uuid.UUID, filter shared.Filter) ([]project.ProjectTimeEntry, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	return persistence.NewGormTimeEntryRepository(s.db.DB).FindByTask(ctx, taskID, filter)
}

// UpdateTimeEntry applies a partial update and re-derives the task's hours
func (s *Service) UpdateTimeEntry(ctx context.Context, id uuid.UUID, input UpdateTimeEntryInput) (*project.ProjectTimeEntry, error) {
	var updated *project.ProjectTimeEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entryRepo := persistence.NewGormTimeEntryRepository(tx)
		e, err := entryRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.EntryDate != nil {
			e.EntryDate = *input.EntryDate
		}
		if input.Hours != nil {
			if input.Hours.LessThanOrEqual(decimal.Zero) {
				return shared.NewDomainError("VALIDATION_FAILED", "Hours must be positive")
			}
			e.Hours = *input.Hours
		}
		if input.Billable != nil {
			e.Billable = *input.Billable
		}
		if input.Notes != nil {
			e.Notes = *input.Notes
		}
		e.Touch()

		if err := entryRepo.Save(ctx, e); err != nil {
			return err
		}
		if err := s.propagateToTask(ctx, tx, e.TaskID); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTimeEntry removes a time entry and re-derives the task's hours
func (s *Service) DeleteTimeEntry(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		entryRepo := persistence.NewGormTimeEntryRepository(tx)
		e, err := entryRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := entryRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.propagateToTask(ctx, tx, e.TaskID)
	})
}

// CreateInvoice invoices a project with its items and re-derives the
// project's invoiced total in the same transaction
func (s *Service) CreateInvoice(ctx context.Context, projectID uuid.UUID, input CreateInvoiceInput) (*project.ProjectInvoice, error) {
	var created *project.ProjectInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		projectRepo := persistence.NewGormProjectRepository(tx)
		invoiceRepo := persistence.NewGormProjectInvoiceRepository(tx)

		if _, err := projectRepo.FindByID(ctx, projectID); err != nil {
			return err
		}

		number, err := shared.GenerateDocumentNumber(shared.PrefixProjectInvoice, func(n string) (bool, error) {
			return invoiceRepo.InvoiceNumberExists(ctx, n)
		})
		if err != nil {
			return err
		}

		invoiceDate := time.Now()
		if input.InvoiceDate != nil {
			invoiceDate = *input.InvoiceDate
		}
		inv, err := project.NewProjectInvoice(number, projectID, invoiceDate, input.DueDate, input.TaxAmount)
		if err != nil {
			return err
		}
		inv.Notes = input.Notes

		for _, it := range input.Items {
			item, err := project.NewProjectInvoiceItem(inv.ID, it.Description, it.Quantity, it.UnitPrice)
			if err != nil {
				return err
			}
			inv.Items = append(inv.Items, *item)
		}
		inv.RecalcTotals()

		if err := invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}
		if err := s.propagateToProject(ctx, tx, projectID); err != nil {
			return err
		}
		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("project invoice created",
		zap.String("project_id", projectID.String()),
		zap.String("invoice_number", created.InvoiceNumber))
	return created, nil
}

// GetInvoice fetches an invoice with its items and payments
func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*project.ProjectInvoice, error) {
	return persistence.NewGormProjectInvoiceRepository(s.db.DB).FindByID(ctx, id)
}

// ListInvoices returns a project's invoices
func (s *Service) ListInvoices(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]project.ProjectInvoice, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return persistence.NewGormProjectInvoiceRepository(s.db.DB).FindByProject(ctx, projectID, filter)
}

// UpdateInvoice applies a partial update and re-derives totals up the chain
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*project.ProjectInvoice, error) {
	var updated *project.ProjectInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormProjectInvoiceRepository(tx)
		inv, err := invoiceRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.InvoiceDate != nil {
			inv.InvoiceDate = *input.InvoiceDate
		}
		if input.DueDate != nil {
			inv.DueDate = input.DueDate
		}
		if input.TaxAmount != nil {
			if input.TaxAmount.IsNegative() {
				return shared.NewDomainError("VALIDATION_FAILED", "Tax amount cannot be negative")
			}
			inv.TaxAmount = *input.TaxAmount
		}
		if input.Notes != nil {
			inv.Notes = *input.Notes
		}
		if input.Items != nil {
			if err := tx.Where("invoice_id = ?", inv.ID).Delete(&project.ProjectInvoiceItem{}).Error; err != nil {
				return err
			}
			inv.Items = nil
			for _, it := range input.Items {
				item, err := project.NewProjectInvoiceItem(inv.ID, it.Description, it.Quantity, it.UnitPrice)
				if err != nil {
					return err
				}
				inv.Items = append(inv.Items, *item)
			}
		}
		inv.RecalcTotals()
		inv.RecalcPaymentStatus()

		if err := invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}
		if err := s.propagateToProject(ctx, tx, inv.ProjectID); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteInvoice removes an invoice and re-derives the project's totals
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormProjectInvoiceRepository(tx)
		inv, err := invoiceRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := invoiceRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.propagateToProject(ctx, tx, inv.ProjectID)
	})
}

// CreatePayment records a payment against a project invoice and re-derives
// the invoice payment status in one transaction
func (s *Service) CreatePayment(ctx context.Context, invoiceID uuid.UUID, input PaymentInput) (*project.ProjectInvoicePayment, error) {
	var created *project.ProjectInvoicePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceRepo := persistence.NewGormProjectInvoiceRepository(tx)
		inv, err := invoiceRepo.FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}

		date := time.Now()
		if input.PaymentDate != nil {
			date = *input.PaymentDate
		}
		p, err := inv.AddPayment(input.Amount, date, input.PaymentMethod, input.Reference)
		if err != nil {
			return err
		}

		if err := invoiceRepo.Save(ctx, inv); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetPayment fetches a single payment
func (s *Service) GetPayment(ctx context.Context, id uuid.UUID) (*project.ProjectInvoicePayment, error) {
	return persistence.NewGormProjectInvoicePaymentRepository(s.db.DB).FindByID(ctx, id)
}

// ListPayments returns an invoice's payments
func (s *Service) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]project.ProjectInvoicePayment, error) {
	if _, err := persistence.NewGormProjectInvoiceRepository(s.db.DB).FindByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return persistence.NewGormProjectInvoicePaymentRepository(s.db.DB).FindByInvoice(ctx, invoiceID)
}

// UpdatePayment applies a partial update and re-derives the invoice payment
// status in the same transaction
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*project.ProjectInvoicePayment, error) {
	var updated *project.ProjectInvoicePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		paymentRepo := persistence.NewGormProjectInvoicePaymentRepository(tx)
		p, err := paymentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Amount != nil {
			if input.Amount.LessThanOrEqual(decimal.Zero) {
				return shared.NewDomainError("VALIDATION_FAILED", "Payment amount must be positive")
			}
			p.Amount = *input.Amount
		}
		if input.PaymentDate != nil {
			p.PaymentDate = *input.PaymentDate
		}
		if input.PaymentMethod != nil {
			p.PaymentMethod = *input.PaymentMethod
		}
		if input.Reference != nil {
			p.Reference = *input.Reference
		}

		if err := paymentRepo.Save(ctx, p); err != nil {
			return err
		}
		if err := s.rederiveInvoice(ctx, tx, p.InvoiceID); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePayment removes a payment and re-derives the invoice payment status;
// deleting the last payment rolls the invoice back to unpaid
func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		paymentRepo := persistence.NewGormProjectInvoicePaymentRepository(tx)
		p, err := paymentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := paymentRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.rederiveInvoice(ctx, tx, p.InvoiceID)
	})
}

// rederiveInvoice re-reads the invoice with its remaining payments inside the
// transaction and re-derives its payment status
func (s *Service) rederiveInvoice(ctx context.Context, tx *gorm.DB, invoiceID uuid.UUID) error {
	invoiceRepo := persistence.NewGormProjectInvoiceRepository(tx)
	inv, err := invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	inv.RecalcPaymentStatus()
	return invoiceRepo.Save(ctx, inv)
}

// propagateToTask re-reads the task with its entries and recomputes hours
func (s *Service) propagateToTask(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
	taskRepo := persistence.NewGormProjectTaskRepository(tx)
	t, err := taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	t.RecalcActualHours()
	return taskRepo.Save(ctx, t)
}

// propagateToProject re-reads the project with its invoices and recomputes
// the invoiced total
func (s *Service) propagateToProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error {
	projectRepo := persistence.NewGormProjectRepository(tx)
	p, err := projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	p.RecalcTotalInvoiced()
	return projectRepo.Save(ctx, p)
}

package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/project"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements project.Repository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID loads the project with its invoices so totals can be recomputed
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).Preload("Invoices").First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ProjectNumberExists reports whether a project number is already taken
func (r *GormProjectRepository) ProjectNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&project.Project{}).
		Where("project_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all projects matching the filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, error) {
	var projects []project.Project
	query := applyFilter(r.db.WithContext(ctx).Model(&project.Project{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Count counts projects matching the filter
func (r *GormProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&project.Project{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates a project without touching its children
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Omit("Tasks", "Invoices").Save(p).Error
}

// Delete removes a project and its children
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&project.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormProjectTaskRepository implements project.TaskRepository using GORM
type GormProjectTaskRepository struct {
	db *gorm.DB
}

// NewGormProjectTaskRepository creates a new GormProjectTaskRepository
func NewGormProjectTaskRepository(db *gorm.DB) *GormProjectTaskRepository {
	return &GormProjectTaskRepository{db: db}
}

// FindByID loads the task with its time entries
func (r *GormProjectTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.ProjectTask, error) {
	var t project.ProjectTask
	err := r.db.WithContext(ctx).Preload("TimeEntries").First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByProject finds a project's tasks
func (r *GormProjectTaskRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]project.ProjectTask, error) {
	var tasks []project.ProjectTask
	query := applyFilter(
		r.db.WithContext(ctx).Model(&project.ProjectTask{}).Where("project_id = ?", projectID),
		filter,
	)
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByProject counts a project's tasks
func (r *GormProjectTaskRepository) CountByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(
		r.db.WithContext(ctx).Model(&project.ProjectTask{}).Where("project_id = ?", projectID),
		filter,
	).Count(&count).Error
	return count, err
}

// Save creates or updates a task without touching its time entries
func (r *GormProjectTaskRepository) Save(ctx context.Context, t *project.ProjectTask) error {
	return r.db.WithContext(ctx).Omit("TimeEntries").Save(t).Error
}

// Delete removes a task and its time entries
func (r *GormProjectTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&project.ProjectTask{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormTimeEntryRepository implements project.TimeEntryRepository using GORM
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewGormTimeEntryRepository creates a new GormTimeEntryRepository
func NewGormTimeEntryRepository(db *gorm.DB) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// FindByID finds a time entry by its ID
func (r *GormTimeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.ProjectTimeEntry, error) {
	var e project.ProjectTimeEntry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByTask finds a task's time entries
func (r *GormTimeEntryRepository) FindByTask(ctx context.Context, taskID uuid.UUID, filter shared.Filter) ([]project.ProjectTimeEntry, error) {
	var entries []project.ProjectTimeEntry
	query := applyFilter(
		r.db.WithContext(ctx).Model(&project.ProjectTimeEntry{}).Where("task_id = ?", taskID),
		filter,
	)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a time entry
func (r *GormTimeEntryRepository) Save(ctx context.Context, e *project.ProjectTimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete removes a time entry
func (r *GormTimeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&project.ProjectTimeEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormProjectInvoiceRepository implements project.InvoiceRepository using GORM
type GormProjectInvoiceRepository struct {
	db *gorm.DB
}

// NewGormProjectInvoiceRepository creates a new GormProjectInvoiceRepository
func NewGormProjectInvoiceRepository(db *gorm.DB) *GormProjectInvoiceRepository {
	return &GormProjectInvoiceRepository{db: db}
}

// FindByID loads the invoice with its items and payments
func (r *GormProjectInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.ProjectInvoice, error) {
	var inv project.ProjectInvoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// InvoiceNumberExists reports whether an invoice number is already taken
func (r *GormProjectInvoiceRepository) InvoiceNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&project.ProjectInvoice{}).
		Where("invoice_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindByProject finds a project's invoices
func (r *GormProjectInvoiceRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]project.ProjectInvoice, error) {
	var invoices []project.ProjectInvoice
	query := applyFilter(
		r.db.WithContext(ctx).Model(&project.ProjectInvoice{}).Where("project_id = ?", projectID),
		filter,
	)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice together with its items and payments
func (r *GormProjectInvoiceRepository) Save(ctx context.Context, inv *project.ProjectInvoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// Delete removes an invoice and its children
func (r *GormProjectInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&project.ProjectInvoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormProjectInvoicePaymentRepository implements project.InvoicePaymentRepository using GORM
type GormProjectInvoicePaymentRepository struct {
	db *gorm.DB
}

// NewGormProjectInvoicePaymentRepository creates a new GormProjectInvoicePaymentRepository
func NewGormProjectInvoicePaymentRepository(db *gorm.DB) *GormProjectInvoicePaymentRepository {
	return &GormProjectInvoicePaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormProjectInvoicePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.ProjectInvoicePayment, error) {
	var p project.ProjectInvoicePayment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByInvoice finds an invoice's payments
func (r *GormProjectInvoicePaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]project.ProjectInvoicePayment, error) {
	var payments []project.ProjectInvoicePayment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormProjectInvoicePaymentRepository) Save(ctx context.Context, payment *project.ProjectInvoicePayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete removes a payment
func (r *GormProjectInvoicePaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&project.ProjectInvoicePayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

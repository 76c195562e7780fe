package persistence

import (
	"context"
	"errors"

	"github.com/coop-erp/backend/internal/domain/payroll"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements payroll.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Employee, error) {
	var e payroll.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// EmployeeNumberExists reports whether an employee number is already taken
func (r *GormEmployeeRepository) EmployeeNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&payroll.Employee{}).
		Where("employee_number = ?", number).Count(&count).Error
	return count > 0, err
}

// FindAll finds all employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payroll.Employee, error) {
	var employees []payroll.Employee
	query := applyFilter(r.db.WithContext(ctx).Model(&payroll.Employee{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Count counts employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyCountFilter(r.db.WithContext(ctx).Model(&payroll.Employee{}), filter)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, e *payroll.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete removes an employee
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&payroll.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPayrollRepository implements payroll.Repository using GORM
type GormPayrollRepository struct {
	db *gorm.DB
}

// NewGormPayrollRepository creates a new GormPayrollRepository
func NewGormPayrollRepository(db *gorm.DB) *GormPayrollRepository {
	return &GormPayrollRepository{db: db}
}

// FindByID finds a payroll run by its ID
func (r *GormPayrollRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Payroll, error) {
	var p payroll.Payroll
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll finds all payroll runs matching the filter
func (r *GormPayrollRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payroll.Payroll, error) {
	var payrolls []payroll.Payroll
	query := applyFilter(r.db.WithContext(ctx).Model(&payroll.Payroll{}), filter)
	if err := query.Find(&payrolls).Error; err != nil {
		return nil, err
	}
	return payrolls, nil
}

// Count counts payroll runs matching the filter
func (r *GormPayrollRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := applyCountFilter(r.db.WithContext(ctx).Model(&payroll.Payroll{}), filter).
		Count(&count).Error
	return count, err
}

// Save creates or updates a payroll run without touching its items
func (r *GormPayrollRepository) Save(ctx context.Context, p *payroll.Payroll) error {
	return r.db.WithContext(ctx).Omit("Items").Save(p).Error
}

// Delete removes a payroll run and its items
func (r *GormPayrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&payroll.Payroll{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPayrollItemRepository implements payroll.ItemRepository using GORM
type GormPayrollItemRepository struct {
	db *gorm.DB
}

// NewGormPayrollItemRepository creates a new GormPayrollItemRepository
func NewGormPayrollItemRepository(db *gorm.DB) *GormPayrollItemRepository {
	return &GormPayrollItemRepository{db: db}
}

// FindByID finds a payroll item by its ID
func (r *GormPayrollItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.PayrollItem, error) {
	var item payroll.PayrollItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByPayroll finds a payroll run's items
func (r *GormPayrollItemRepository) FindByPayroll(ctx context.Context, payrollID uuid.UUID, filter shared.Filter) ([]payroll.PayrollItem, error) {
	var items []payroll.PayrollItem
	query := applyFilter(
		r.db.WithContext(ctx).Model(&payroll.PayrollItem{}).Where("payroll_id = ?", payrollID),
		filter,
	)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a payroll item
func (r *GormPayrollItemRepository) Save(ctx context.Context, item *payroll.PayrollItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a payroll item
func (r *GormPayrollItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&payroll.PayrollItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

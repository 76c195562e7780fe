package payroll

import (
	"context"
	"time"

	"github.com/coop-erp/backend/internal/domain/payroll"
	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles employees and payroll runs. Item writes adjust the payroll
// run's total by the item's net delta in the same transaction.
type Service struct {
	db     *persistence.Database
	logger *zap.Logger
}

// NewService creates a new payroll Service
func NewService(db *persistence.Database, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateEmployeeInput carries the fields for registering an employee
type CreateEmployeeInput struct {
	Name        string          `json:"name" binding:"required"`
	Position    string          `json:"position"`
	Department  string          `json:"department"`
	HireDate    *time.Time      `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	BankAccount string          `json:"bank_account"`
}

// UpdateEmployeeInput carries a partial update; nil fields are left unchanged
type UpdateEmployeeInput struct {
	Name        *string          `json:"name"`
	Position    *string          `json:"position"`
	Department  *string          `json:"department"`
	BaseSalary  *decimal.Decimal `json:"base_salary"`
	BankAccount *string          `json:"bank_account"`
	Status      *string          `json:"status"`
}

// CreatePayrollInput carries the fields for opening a payroll run
type CreatePayrollInput struct {
	PeriodID    uuid.UUID  `json:"period_id" binding:"required"`
	PayrollDate *time.Time `json:"payroll_date"`
	Notes       string     `json:"notes"`
}

// UpdatePayrollInput carries a partial payroll update. TotalAmount is never
// updated directly, only through item mutations.
type UpdatePayrollInput struct {
	PayrollDate *time.Time `json:"payroll_date"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
}

// PayrollItemInput carries the fields for adding an employee to a run
type PayrollItemInput struct {
	EmployeeID  uuid.UUID       `json:"employee_id" binding:"required"`
	GrossSalary decimal.Decimal `json:"gross_salary" binding:"required"`
	Deductions  decimal.Decimal `json:"deductions"`
	Notes       string          `json:"notes"`
}

// UpdatePayrollItemInput carries a partial item update
type UpdatePayrollItemInput struct {
	GrossSalary *decimal.Decimal `json:"gross_salary"`
	Deductions  *decimal.Decimal `json:"deductions"`
	Notes       *string          `json:"notes"`
}

// CreateEmployee registers an employee with a generated employee number
func (s *Service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*payroll.Employee, error) {
	repo := persistence.NewGormEmployeeRepository(s.db.DB)
	number, err := shared.GenerateDocumentNumber(shared.PrefixEmployee, func(n string) (bool, error) {
		return repo.EmployeeNumberExists(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	hireDate := time.Now()
	if input.HireDate != nil {
		hireDate = *input.HireDate
	}
	e, err := payroll.NewEmployee(number, input.Name, input.Position, hireDate, input.BaseSalary)
	if err != nil {
		return nil, err
	}
	e.Department = input.Department
	e.BankAccount = input.BankAccount

	if err := repo.Save(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("employee registered",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber))
	return e, nil
}

// GetEmployee fetches an employee by ID
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*payroll.Employee, error) {
	return persistence.NewGormEmployeeRepository(s.db.DB).FindByID(ctx, id)
}

// ListEmployees returns a page of employees
func (s *Service) ListEmployees(ctx context.Context, filter shared.Filter) (*shared.Paginated[payroll.Employee], error) {
	repo := persistence.NewGormEmployeeRepository(s.db.DB)
	employees, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(employees, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdateEmployee applies a partial update to an employee
func (s *Service) UpdateEmployee(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*payroll.Employee, error) {
	repo := persistence.NewGormEmployeeRepository(s.db.DB)
	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Employee name cannot be empty")
		}
		e.Name = *input.Name
	}
	if input.Position != nil {
		e.Position = *input.Position
	}
	if input.Department != nil {
		e.Department = *input.Department
	}
	if input.BaseSalary != nil {
		if input.BaseSalary.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Base salary cannot be negative")
		}
		e.BaseSalary = *input.BaseSalary
	}
	if input.BankAccount != nil {
		e.BankAccount = *input.BankAccount
	}
	if input.Status != nil {
		status := payroll.EmployeeStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Employee status is not valid")
		}
		e.Status = status
	}
	e.Touch()

	if err := repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEmployee removes an employee
func (s *Service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormEmployeeRepository(s.db.DB).Delete(ctx, id)
}

// CreatePayroll opens a draft payroll run for a fiscal period
func (s *Service) CreatePayroll(ctx context.Context, input CreatePayrollInput) (*payroll.Payroll, error) {
	date := time.Now()
	if input.PayrollDate != nil {
		date = *input.PayrollDate
	}
	p, err := payroll.NewPayroll(input.PeriodID, date, input.Notes)
	if err != nil {
		return nil, err
	}
	if err := persistence.NewGormPayrollRepository(s.db.DB).Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("payroll run opened",
		zap.String("payroll_id", p.ID.String()),
		zap.String("period_id", p.PeriodID.String()))
	return p, nil
}

// GetPayroll fetches a payroll run with its items
func (s *Service) GetPayroll(ctx context.Context, id uuid.UUID) (*payroll.Payroll, error) {
	return persistence.NewGormPayrollRepository(s.db.DB).FindByID(ctx, id)
}

// ListPayrolls returns a page of payroll runs
func (s *Service) ListPayrolls(ctx context.Context, filter shared.Filter) (*shared.Paginated[payroll.Payroll], error) {
	repo := persistence.NewGormPayrollRepository(s.db.DB)
	payrolls, err := repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(payrolls, total, filter.Page, filter.Limit())
	return &page, nil
}

// UpdatePayroll applies a partial update to a payroll run
func (s *Service) UpdatePayroll(ctx context.Context, id uuid.UUID, input UpdatePayrollInput) (*payroll.Payroll, error) {
	repo := persistence.NewGormPayrollRepository(s.db.DB)
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PayrollDate != nil {
		p.PayrollDate = *input.PayrollDate
	}
	if input.Status != nil {
		status := payroll.PayrollStatus(*input.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("VALIDATION_FAILED", "Payroll status is not valid")
		}
		p.Status = status
	}
	if input.Notes != nil {
		p.Notes = *input.Notes
	}
	p.Touch()

	if err := repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePayroll removes a payroll run and its items
func (s *Service) DeletePayroll(ctx context.Context, id uuid.UUID) error {
	return persistence.NewGormPayrollRepository(s.db.DB).Delete(ctx, id)
}

// CreatePayrollItem adds an employee's line to a run and adds its net salary
// to the run's total in one transaction
func (s *Service) CreatePayrollItem(ctx context.Context, payrollID uuid.UUID, input PayrollItemInput) (*payroll.PayrollItem, error) {
	var created *payroll.PayrollItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		payrollRepo := persistence.NewGormPayrollRepository(tx)
		itemRepo := persistence.NewGormPayrollItemRepository(tx)
		employeeRepo := persistence.NewGormEmployeeRepository(tx)

		p, err := payrollRepo.FindByID(ctx, payrollID)
		if err != nil {
			return err
		}
		if _, err := employeeRepo.FindByID(ctx, input.EmployeeID); err != nil {
			return err
		}

		item, err := payroll.NewPayrollItem(payrollID, input.EmployeeID, input.GrossSalary, input.Deductions)
		if err != nil {
			return err
		}
		item.Notes = input.Notes

		if err := itemRepo.Save(ctx, item); err != nil {
			return err
		}
		p.AddItemAmount(item.NetSalary)
		if err := payrollRepo.Save(ctx, p); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListPayrollItems returns a run's items
func (s *Service) ListPayrollItems(ctx context.Context, payrollID uuid.UUID, filter shared.Filter) ([]payroll.PayrollItem, error) {
	if _, err := s.GetPayroll(ctx, payrollID); err != nil {
		return nil, err
	}
	return persistence.NewGormPayrollItemRepository(s.db.DB).FindByPayroll(ctx, payrollID, filter)
}

// UpdatePayrollItem applies a partial item update and shifts the run's total
// by the net salary delta in one transaction
func (s *Service) UpdatePayrollItem(ctx context.Context, id uuid.UUID, input UpdatePayrollItemInput) (*payroll.PayrollItem, error) {
	var updated *payroll.PayrollItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		payrollRepo := persistence.NewGormPayrollRepository(tx)
		itemRepo := persistence.NewGormPayrollItemRepository(tx)

		item, err := itemRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		oldNet := item.NetSalary

		if input.GrossSalary != nil {
			if input.GrossSalary.IsNegative() {
				return shared.NewDomainError("VALIDATION_FAILED", "Salary amounts cannot be negative")
			}
			item.GrossSalary = *input.GrossSalary
		}
		if input.Deductions != nil {
			if input.Deductions.IsNegative() {
				return shared.NewDomainError("VALIDATION_FAILED", "Salary amounts cannot be negative")
			}
			item.Deductions = *input.Deductions
		}
		if item.Deductions.GreaterThan(item.GrossSalary) {
			return shared.NewDomainError("VALIDATION_FAILED", "Deductions cannot exceed gross salary")
		}
		item.NetSalary = item.GrossSalary.Sub(item.Deductions)
		if input.Notes != nil {
			item.Notes = *input.Notes
		}
		item.Touch()

		if err := itemRepo.Save(ctx, item); err != nil {
			return err
		}

		p, err := payrollRepo.FindByID(ctx, item.PayrollID)
		if err != nil {
			return err
		}
		p.AdjustItemAmount(oldNet, item.NetSalary)
		if err := payrollRepo.Save(ctx, p); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePayrollItem removes an item and subtracts its net salary from the
// run's total in one transaction
func (s *Service) DeletePayrollItem(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		payrollRepo := persistence.NewGormPayrollRepository(tx)
		itemRepo := persistence.NewGormPayrollItemRepository(tx)

		item, err := itemRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := itemRepo.Delete(ctx, id); err != nil {
			return err
		}

		p, err := payrollRepo.FindByID(ctx, item.PayrollID)
		if err != nil {
			return err
		}
		p.RemoveItemAmount(item.NetSalary)
		return payrollRepo.Save(ctx, p)
	})
}

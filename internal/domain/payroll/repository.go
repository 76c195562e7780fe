package payroll

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	EmployeeNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository defines the interface for payroll persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payroll, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payroll, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository defines the interface for payroll item persistence
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PayrollItem, error)
	FindByPayroll(ctx context.Context, payrollID uuid.UUID, filter shared.Filter) ([]PayrollItem, error)
	Save(ctx context.Context, item *PayrollItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package trade

import (
	"context"

	"github.com/coop-erp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesOrderRepository defines the interface for sales order persistence.
// FindByID loads the aggregate with its items and invoices (with payments).
type SalesOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	OrderNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *SalesOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalesInvoiceRepository defines the interface for sales invoice persistence
type SalesInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesInvoice, error)
	InvoiceNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesInvoice, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, invoice *SalesInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoicePaymentRepository defines the interface for sales invoice payment persistence
type InvoicePaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoicePayment, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]InvoicePayment, error)
	Save(ctx context.Context, payment *InvoicePayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	OrderNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierInvoiceRepository defines the interface for supplier invoice persistence
type SupplierInvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierInvoice, error)
	InvoiceNumberExists(ctx context.Context, number string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SupplierInvoice, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, invoice *SupplierInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierInvoicePaymentRepository defines the interface for supplier invoice payment persistence
type SupplierInvoicePaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierInvoicePayment, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]SupplierInvoicePayment, error)
	Save(ctx context.Context, payment *SupplierInvoicePayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
